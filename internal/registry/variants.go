package registry

func init() {
	Register(Variant{
		ID:          "plus",
		Title:       "Snake Plus",
		Description: "apples and traps: every new apple brings a new trap",
		Hazards:     true,
	})
	Register(Variant{
		ID:          "classic",
		Title:       "Classic Snake",
		Description: "apples only",
		Hazards:     false,
	})
}
