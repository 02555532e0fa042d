package names

// Placeholder tokens used by the pristine template tree.
const (
	PlaceholderToolSlug    = "your_tool_name"
	PlaceholderClassName   = "YourTool"
	PlaceholderPackageName = "mcpstack_your_tool_name"
	PlaceholderDistName    = "mcpstack-your-tool-name"
	PlaceholderEnvPrefix   = "MCP_YOUR_TOOL_NAME"
)

// Placeholders returns the NameSet made of the template's placeholder tokens.
// It is also the built-in default when neither flags nor stored config
// provide a value.
func Placeholders() NameSet {
	return NameSet{
		ToolSlug:    PlaceholderToolSlug,
		ClassName:   PlaceholderClassName,
		PackageName: PlaceholderPackageName,
		DistName:    PlaceholderDistName,
		EnvPrefix:   PlaceholderEnvPrefix,
	}
}

// Placeholder returns the placeholder token for a field.
func Placeholder(f Field) string {
	return Placeholders().Get(f)
}
