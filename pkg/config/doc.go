// Package config loads blockcanvas settings from TOML.
//
// The default location is $XDG_CONFIG_HOME/blockcanvas/config.toml (see
// [os.UserConfigDir]). A missing file is not an error: [LoadDefault] then
// returns [Default]. Keys absent from a file keep their default values.
//
//	[navigation]
//	alignment_weight = 2.0
//	cursor_gating = true
//
//	[grid]
//	cell_width = 20.0
//	cell_height = 20.0
//
//	[viewport]
//	width = 1280.0
//	height = 720.0
//	animation_ms = 0
//	drag_button = "primary"
//
//	[text]
//	line_height = 20.0
//	header_height = 0.0
//
//	[log]
//	level = "info"
//
// Values from a scene file take precedence over the configuration.
package config
