package multistep

// Policy computes the step to move to on Next and Previous.
type Policy[K Key] struct {
	Next     func(current K, values Values) K
	Previous func(current K) K
}

// withDefaults fills missing functions with +1/-1 for index keys. Named keys
// get no defaults and must supply both.
func (p Policy[K]) withDefaults() (Policy[K], error) {
	var zero K
	if _, ok := any(zero).(int); !ok {
		if p.Next == nil || p.Previous == nil {
			return p, ErrPolicyRequired
		}
		return p, nil
	}

	if p.Next == nil {
		p.Next = func(current K, _ Values) K {
			return any(any(current).(int) + 1).(K)
		}
	}
	if p.Previous == nil {
		p.Previous = func(current K) K {
			return any(any(current).(int) - 1).(K)
		}
	}
	return p, nil
}
