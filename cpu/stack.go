package cpu

const (
	STACK_LIMIT = 16 // Maximum call stack depth
)

// Stack is the dedicated, bounded call stack of return addresses used by
// CALL and RET. It is not part of main memory.
type Stack struct {
	Data []int
}

func (s *Stack) Push(address int) {
	s.Data = append(s.Data, address)
}

func (s *Stack) Pop() (address int, ok bool) {
	address, ok = s.Peek()
	if ok {
		s.Data = s.Data[:len(s.Data)-1]
	}
	return
}

func (s *Stack) Empty() bool {
	return len(s.Data) == 0
}

func (s *Stack) Full() bool {
	return len(s.Data) == STACK_LIMIT
}

func (s *Stack) Peek() (address int, ok bool) {
	if s.Empty() {
		return
	}

	return s.Data[len(s.Data)-1], true
}

func (s *Stack) Reset() {
	if len(s.Data) > 0 {
		s.Data = s.Data[:0]
	}
}
