package state

func IsStartRequested(ch string) bool {
	return ch == " "
}

func (s *State) Phase() string {
	return s.FSM.Current()
}

func (s *State) IsWaiting() bool {
	return s.FSM.Is(PhaseWaiting)
}

func (s *State) IsPlaying() bool {
	return s.FSM.Is(PhasePlaying)
}

func (s *State) IsOver() bool {
	return s.FSM.Is(PhaseGameOver)
}

func (s State) PairCount() int {
	return len(s.Options.Pairs)
}

func (s State) Won() bool {
	return s.MatchedPairs == s.PairCount()
}
