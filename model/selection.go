package model

// Selection is a range of absolute document positions, half-open.
// A selection with From == To is collapsed and selects nothing.
type Selection struct {
	From int
	To   int
}

// Empty reports whether the selection selects no content
func (s Selection) Empty() bool {
	return s.From == s.To
}

// Clamp returns the selection restricted to the document's position range,
// with From and To swapped into ascending order if needed.
func (s Selection) Clamp(d *Document) Selection {
	if s.To < s.From {
		s.From, s.To = s.To, s.From
	}
	size := d.Size()
	if s.From < 0 {
		s.From = 0
	}
	if s.To < 0 {
		s.To = 0
	}
	if s.From > size {
		s.From = size
	}
	if s.To > size {
		s.To = size
	}
	return s
}
