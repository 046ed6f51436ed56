package catalog

var builtinTemplates = []TemplateSpec{
	{ID: "ocean", Name: "Ocean", TopHex: "#0F2027", BottomHex: "#2C5364"},
	{ID: "sunset", Name: "Sunset", TopHex: "#F37335", BottomHex: "#FDC830"},
	{ID: "forest", Name: "Forest", TopHex: "#134E5E", BottomHex: "#71B280"},
	{ID: "midnight", Name: "Midnight", TopHex: "#232526", BottomHex: "#414345"},
	{ID: "berry", Name: "Berry", TopHex: "#8E2DE2", BottomHex: "#4A00E0"},
	{ID: "coral", Name: "Coral", TopHex: "#FF416C", BottomHex: "#FF4B2B"},
	{ID: "mint", Name: "Mint", TopHex: "#00B09B", BottomHex: "#96C93D"},
	{ID: "slate", Name: "Slate", TopHex: "#2C3E50", BottomHex: "#4CA1AF"},
	{ID: "dawn", Name: "Dawn", TopHex: "#C33764", BottomHex: "#1D2671"},
	{ID: "sand", Name: "Sand", TopHex: "#C9B37E", BottomHex: "#9D8858"},
}

var builtinDevices = []Device{
	{ID: "iphone_6.7", Name: `iPhone 6.7" (1290 x 2796)`, Width: 1290, Height: 2796, Family: FamilyHandheld},
	{ID: "iphone_6.5", Name: `iPhone 6.5" (1284 x 2778)`, Width: 1284, Height: 2778, Family: FamilyHandheld},
	{ID: "iphone_5.5", Name: `iPhone 5.5" (1242 x 2208)`, Width: 1242, Height: 2208, Family: FamilyHandheld},
	{ID: "ipad_12.9", Name: `iPad 12.9" (2048 x 2732)`, Width: 2048, Height: 2732, Family: FamilyTablet},
	{ID: "ipad_13", Name: `iPad Pro 13" (2064 x 2752)`, Width: 2064, Height: 2752, Family: FamilyTablet},
	{ID: "macbook_pro_16", Name: `MacBook Pro 16" (2880 x 1800)`, Width: 2880, Height: 1800, Family: FamilyLaptop},
}

// Builtin returns the registry shipped with the server.
func Builtin() *Catalog {
	c, err := New(builtinTemplates, builtinDevices)
	if err != nil {
		// The declarations above are constants; a failure here is a programming error.
		panic("catalog: invalid built-in declarations: " + err.Error())
	}
	return c
}
