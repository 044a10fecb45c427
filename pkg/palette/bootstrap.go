package palette

// BootstrapName is the registry name of the built-in Bootstrap palette.
const BootstrapName = "bootstrap"

var bootstrap = Palette{
	Name: BootstrapName,
	Colors: []Color{
		{Name: "Blue", Background: "bg-primary-200", Text: "text-primary"},
		{Name: "Green", Background: "bg-success-200", Text: "text-success"},
		{Name: "Yellow", Background: "bg-warning-200", Text: "text-warning"},
		{Name: "Red", Background: "bg-danger-200", Text: "text-danger"},
		{Name: "Purple", Background: "bg-purple-200", Text: "text-purple"},
		{Name: "Indigo", Background: "bg-indigo-200", Text: "text-indigo"},
		{Name: "Pink", Background: "bg-pink-200", Text: "text-pink"},
		{Name: "Orange", Background: "bg-orange-200", Text: "text-orange"},
		{Name: "Teal", Background: "bg-teal-200", Text: "text-teal"},
		{Name: "Cyan", Background: "bg-cyan-200", Text: "text-cyan"},
		{Name: "Gray", Background: "bg-gray-200", Text: "text-gray"},
	},
}

// Bootstrap returns the built-in Bootstrap 5 palette. The returned value
// shares no slice storage with previous calls, so callers can append safely.
func Bootstrap() Palette {
	out := Palette{Name: bootstrap.Name, Colors: make([]Color, len(bootstrap.Colors))}
	copy(out.Colors, bootstrap.Colors)
	return out
}
