package unistr

// Output is the result of an operation that produces encoded text. Units
// holds the result. Reused is true if Units shares the backing array of the
// buffer the caller passed in, false if it was freshly allocated.
type Output[U CodeUnit] struct {
	Units  []U
	Reused bool
}

// sink accumulates encoded output, preferring the caller's buffer.
type sink[U CodeUnit] struct {
	codec  Codec[U]
	units  []U
	reused bool
}

func newSink[U CodeUnit](c Codec[U], buf []U) *sink[U] {
	return &sink[U]{
		codec:  c,
		units:  buf[:0],
		reused: cap(buf) > 0,
	}
}

// put appends r. A change of capacity means append reallocated.
func (s *sink[U]) put(r rune) error {
	before := cap(s.units)
	s.units = s.codec.Append(s.units, r)
	if cap(s.units) != before {
		s.reused = false
	}
	if len(s.units) > maxOutputUnits {
		return ErrNoMemory
	}
	return nil
}

func (s *sink[U]) putAll(runes []rune) error {
	for _, r := range runes {
		if err := s.put(r); err != nil {
			return err
		}
	}
	return nil
}

func (s *sink[U]) output() Output[U] {
	return Output[U]{Units: s.units, Reused: s.reused}
}

// encodeInto encodes runes with c, using buf for storage if it is large
// enough.
func encodeInto[U CodeUnit](c Codec[U], runes []rune, buf []U) (Output[U], error) {
	if len(runes) > maxOutputUnits {
		return Output[U]{}, ErrNoMemory
	}
	s := newSink(c, buf)
	if err := s.putAll(runes); err != nil {
		return Output[U]{}, err
	}
	return s.output(), nil
}
