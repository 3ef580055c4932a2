package panel

// Field describes one form input for rendering.
type Field struct {
	Name     string
	Label    string
	Type     string
	Value    string
	Checked  bool
	Required bool
	Options  []string
}
