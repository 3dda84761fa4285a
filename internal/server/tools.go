package server

import (
	"github.com/ironsheep/bitmap-tools-mcp/internal/imaging"
	"github.com/ironsheep/bitmap-tools-mcp/internal/strutil"
)

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

var pixelFormatEnum = []string{
	string(imaging.ARGB8888),
	string(imaging.RGB565),
	string(imaging.Alpha8),
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Bitmap Operations
		{
			Name:        "bitmap_probe",
			Description: "Read the width, height and format of an image file without decoding its pixels.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "bitmap_sample_size",
			Description: "Compute the largest power-of-two sample size that keeps both decoded dimensions at least as large as the requested size. Give either a path or explicit width and height.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Optional image file whose bounds are probed",
					},
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Source width in pixels (ignored when path is set)",
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Source height in pixels (ignored when path is set)",
					},
					"req_width": map[string]interface{}{
						"type":        "integer",
						"description": "Requested width in pixels",
					},
					"req_height": map[string]interface{}{
						"type":        "integer",
						"description": "Requested height in pixels",
					},
				},
				"required": []string{"req_width", "req_height"},
			},
		},
		{
			Name:        "bitmap_decode_sampled",
			Description: "Decode an image reduced by its power-of-two sample size for the requested box and return it as base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"req_width": map[string]interface{}{
						"type":        "integer",
						"description": "Requested width in pixels",
					},
					"req_height": map[string]interface{}{
						"type":        "integer",
						"description": "Requested height in pixels",
					},
					"pixel_format": map[string]interface{}{
						"type":        "string",
						"enum":        pixelFormatEnum,
						"description": "Pixel format of the decoded bitmap. Defaults to the configured format",
					},
					"filter": map[string]interface{}{
						"type":        "string",
						"enum":        imaging.FilterNames(),
						"description": "Resampling filter for the reduction. Defaults to the configured filter",
					},
				},
				"required": []string{"path", "req_width", "req_height"},
			},
		},
		{
			Name:        "bitmap_sample_pixels",
			Description: "Decode an image like bitmap_decode_sampled and report the colors at points of the decoded bitmap.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"req_width": map[string]interface{}{
						"type":        "integer",
						"description": "Requested width in pixels",
					},
					"req_height": map[string]interface{}{
						"type":        "integer",
						"description": "Requested height in pixels",
					},
					"pixel_format": map[string]interface{}{
						"type":        "string",
						"enum":        pixelFormatEnum,
						"description": "Pixel format of the decoded bitmap",
					},
					"filter": map[string]interface{}{
						"type":        "string",
						"enum":        imaging.FilterNames(),
						"description": "Resampling filter for the reduction",
					},
					"points": map[string]interface{}{
						"type": "array",
						"items": map[string]interface{}{
							"type": "object",
							"properties": map[string]interface{}{
								"x":     map[string]interface{}{"type": "integer"},
								"y":     map[string]interface{}{"type": "integer"},
								"label": map[string]interface{}{"type": "string"},
							},
							"required": []string{"x", "y"},
						},
						"description": "Points in decoded coordinates",
					},
				},
				"required": []string{"path", "req_width", "req_height", "points"},
			},
		},
		{
			Name:        "bitmap_capture_scroll",
			Description: "Stack images vertically like the children of a scroll view and return the RGB_565 capture as base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"paths": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "string"},
						"description": "Image files for the children, top to bottom",
					},
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Capture width. Defaults to the widest child",
					},
					"background": map[string]interface{}{
						"type":        "string",
						"description": "Background color as #rrggbb. Default " + imaging.DefaultBackground,
					},
				},
				"required": []string{"paths"},
			},
		},
		{
			Name:        "bitmap_cache_clear",
			Description: "Release cached decoded bitmaps, either for one path or all of them.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Optional path to evict. Clears the whole cache when empty",
					},
				},
			},
		},

		// Screen Units
		{
			Name:        "screen_convert",
			Description: "Convert between density-independent pixels (dp) and physical pixels (px) for the configured display.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"value": map[string]interface{}{
						"type":        "number",
						"description": "Value to convert",
					},
					"direction": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"dp_to_px", "px_to_dp"},
						"description": "Conversion direction",
					},
					"density_dpi": map[string]interface{}{
						"type":        "integer",
						"description": "Optional density bucket overriding the configured display (160 = 1x)",
					},
				},
				"required": []string{"value", "direction"},
			},
		},

		// String Utilities
		{
			Name:        "string_validate",
			Description: "Check whether a string is empty, an IPv4 address or an email address.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"value": map[string]interface{}{
						"type":        "string",
						"description": "String to check",
					},
					"kind": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"empty", "ipv4", "email"},
						"description": "Check to run",
					},
				},
				"required": []string{"value", "kind"},
			},
		},
		{
			Name:        "string_url_codec",
			Description: "Form-encode or decode a string as UTF-8 or ISO-8859-1.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"value": map[string]interface{}{
						"type":        "string",
						"description": "String to encode or decode",
					},
					"operation": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"encode", "decode"},
						"description": "Direction",
					},
					"charset": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"utf-8", "iso-8859-1"},
						"description": "Character set. Default utf-8",
						"default":     "utf-8",
					},
				},
				"required": []string{"value", "operation"},
			},
		},
		{
			Name:        "string_digest",
			Description: "Hash a string and return the digest as lower-case hex.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"value": map[string]interface{}{
						"type":        "string",
						"description": "String to hash",
					},
					"algorithm": map[string]interface{}{
						"type":        "string",
						"enum":        strutil.Algorithms(),
						"description": "Digest algorithm. Default MD5",
						"default":     "MD5",
					},
					"pad_to": map[string]interface{}{
						"type":        "integer",
						"description": "Left-pad the hex with zeros to this length after dropping leading zeros. 0 keeps the full digest",
					},
				},
				"required": []string{"value"},
			},
		},
		{
			Name:        "string_resolve_entities",
			Description: "Resolve a single XML entity name (\"amp\", \"#65\", \"#x41\") or unescape every HTML entity in a text.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"value": map[string]interface{}{
						"type":        "string",
						"description": "Entity name or text",
					},
					"mode": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"entity", "html"},
						"description": "entity resolves one name, html unescapes a whole text. Default entity",
						"default":     "entity",
					},
				},
				"required": []string{"value"},
			},
		},
		{
			Name:        "string_lines",
			Description: "Line and list helpers: split into lines, find lines containing a substring, split on a single character, ellipsize, join with commas or concatenate lines.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"operation": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"split", "find", "fast_split", "ellipsize", "join", "concat"},
						"description": "Operation to run",
					},
					"text": map[string]interface{}{
						"type":        "string",
						"description": "Input text",
					},
					"items": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "string"},
						"description": "Items for join and concat",
					},
					"skip_empty": map[string]interface{}{
						"type":        "boolean",
						"description": "Drop empty lines when splitting",
					},
					"query": map[string]interface{}{
						"type":        "string",
						"description": "Substring for find",
					},
					"delimiter": map[string]interface{}{
						"type":        "string",
						"description": "Single character for fast_split",
					},
					"max_length": map[string]interface{}{
						"type":        "integer",
						"description": "Maximum length for ellipsize",
					},
				},
				"required": []string{"operation"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
