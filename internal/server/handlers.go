package server

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"unicode/utf8"

	"github.com/ironsheep/bitmap-tools-mcp/internal/imaging"
	"github.com/ironsheep/bitmap-tools-mcp/internal/screen"
	"github.com/ironsheep/bitmap-tools-mcp/internal/strutil"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "bitmap_probe", "string_digest").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		if s.debug {
			log.Printf("%s failed: %v", params.Name, err)
		}
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}

	switch name {
	// Bitmap Operations
	case "bitmap_probe":
		return s.handleBitmapProbe(args)
	case "bitmap_sample_size":
		return s.handleBitmapSampleSize(args)
	case "bitmap_decode_sampled":
		return s.handleBitmapDecodeSampled(args)
	case "bitmap_sample_pixels":
		return s.handleBitmapSamplePixels(args)
	case "bitmap_capture_scroll":
		return s.handleBitmapCaptureScroll(args)
	case "bitmap_cache_clear":
		return s.handleBitmapCacheClear(args)

	// Screen Units
	case "screen_convert":
		return s.handleScreenConvert(args)

	// String Utilities
	case "string_validate":
		return s.handleStringValidate(args)
	case "string_url_codec":
		return s.handleStringURLCodec(args)
	case "string_digest":
		return s.handleStringDigest(args)
	case "string_resolve_entities":
		return s.handleStringResolveEntities(args)
	case "string_lines":
		return s.handleStringLines(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure it returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Bitmap Handlers ===

type bitmapProbeArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleBitmapProbe(args json.RawMessage) (interface{}, error) {
	var a bitmapProbeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.ProbeFile(a.Path)
}

type bitmapSampleSizeArgs struct {
	Path      string `json:"path"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	ReqWidth  int    `json:"req_width"`
	ReqHeight int    `json:"req_height"`
}

// SampleSizeResult reports a sample size together with the size it yields.
type SampleSizeResult struct {
	SourceWidth   int `json:"source_width"`
	SourceHeight  int `json:"source_height"`
	ReqWidth      int `json:"req_width"`
	ReqHeight     int `json:"req_height"`
	SampleSize    int `json:"sample_size"`
	SampledWidth  int `json:"sampled_width"`
	SampledHeight int `json:"sampled_height"`
}

func (s *Server) handleBitmapSampleSize(args json.RawMessage) (interface{}, error) {
	var a bitmapSampleSizeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	bounds := imaging.Bounds{Width: a.Width, Height: a.Height}
	if a.Path != "" {
		b, err := imaging.ProbeFile(a.Path)
		if err != nil {
			return nil, err
		}
		bounds = *b
	}

	size, err := imaging.SampleSizeFor(bounds, a.ReqWidth, a.ReqHeight)
	if err != nil {
		return nil, err
	}
	w, h := imaging.SampledDimensions(bounds.Width, bounds.Height, size)

	return &SampleSizeResult{
		SourceWidth:   bounds.Width,
		SourceHeight:  bounds.Height,
		ReqWidth:      a.ReqWidth,
		ReqHeight:     a.ReqHeight,
		SampleSize:    size,
		SampledWidth:  w,
		SampledHeight: h,
	}, nil
}

type bitmapDecodeSampledArgs struct {
	Path        string `json:"path"`
	ReqWidth    int    `json:"req_width"`
	ReqHeight   int    `json:"req_height"`
	PixelFormat string `json:"pixel_format"`
	Filter      string `json:"filter"`
}

func (s *Server) handleBitmapDecodeSampled(args json.RawMessage) (interface{}, error) {
	var a bitmapDecodeSampledArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	bmp, err := s.decodeSampled(a)
	if err != nil {
		return nil, err
	}
	return imaging.EncodeSampled(bmp)
}

// decodeSampled decodes through the cache when it is enabled, layering the
// per-call pixel format and filter over the configured defaults.
func (s *Server) decodeSampled(a bitmapDecodeSampledArgs) (*imaging.Bitmap, error) {
	opts := s.cfg.DecodeOptions()
	if a.PixelFormat != "" {
		pf, err := imaging.ParsePixelFormat(a.PixelFormat)
		if err != nil {
			return nil, err
		}
		opts = append(opts, imaging.WithPixelFormat(pf))
	}
	if a.Filter != "" {
		if !knownFilter(a.Filter) {
			return nil, fmt.Errorf("unknown filter %q (want one of %s)", a.Filter, strings.Join(imaging.FilterNames(), ", "))
		}
		opts = append(opts, imaging.WithFilter(a.Filter))
	}

	var (
		bmp *imaging.Bitmap
		err error
	)
	if s.cache != nil {
		bmp, err = s.cache.Load(a.Path, a.ReqWidth, a.ReqHeight, opts...)
	} else {
		bmp, err = imaging.DecodeSampledFile(a.Path, a.ReqWidth, a.ReqHeight, opts...)
	}
	if err != nil {
		return nil, err
	}

	if s.debug {
		log.Printf("decoded %s: %dx%d -> %dx%d (sample size %d)",
			a.Path, bmp.SourceWidth, bmp.SourceHeight, bmp.Width(), bmp.Height(), bmp.SampleSize)
	}
	return bmp, nil
}

func knownFilter(name string) bool {
	for _, f := range imaging.FilterNames() {
		if strings.EqualFold(f, name) {
			return true
		}
	}
	return false
}

type bitmapSamplePixelsArgs struct {
	bitmapDecodeSampledArgs
	Points []struct {
		X     int    `json:"x"`
		Y     int    `json:"y"`
		Label string `json:"label,omitempty"`
	} `json:"points"`
}

func (s *Server) handleBitmapSamplePixels(args json.RawMessage) (interface{}, error) {
	var a bitmapSamplePixelsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	bmp, err := s.decodeSampled(a.bitmapDecodeSampledArgs)
	if err != nil {
		return nil, err
	}

	points := make([]imaging.LabeledPoint, len(a.Points))
	for i, p := range a.Points {
		points[i] = imaging.LabeledPoint{X: p.X, Y: p.Y, Label: p.Label}
	}

	samples, err := imaging.SamplePixels(bmp, points)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"sample_size":  bmp.SampleSize,
		"pixel_format": bmp.PixelFormat,
		"width":        bmp.Width(),
		"height":       bmp.Height(),
		"samples":      samples,
	}, nil
}

type bitmapCaptureScrollArgs struct {
	Paths      []string `json:"paths"`
	Width      int      `json:"width"`
	Background string   `json:"background"`
}

func (s *Server) handleBitmapCaptureScroll(args json.RawMessage) (interface{}, error) {
	var a bitmapCaptureScrollArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	children := make([]imaging.View, 0, len(a.Paths))
	for _, p := range a.Paths {
		v, err := imaging.OpenView(p)
		if err != nil {
			return nil, err
		}
		children = append(children, v)
	}

	img, err := imaging.CaptureScrollView(children, a.Width, a.Background)
	if err != nil {
		return nil, err
	}
	return imaging.EncodeBitmap(img)
}

type bitmapCacheClearArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleBitmapCacheClear(args json.RawMessage) (interface{}, error) {
	var a bitmapCacheClearArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	if s.cache == nil {
		return map[string]interface{}{"enabled": false, "evicted": 0, "cached": 0}, nil
	}

	before := s.cache.Len()
	if a.Path != "" {
		s.cache.Evict(a.Path)
	} else {
		s.cache.Clear()
	}
	after := s.cache.Len()

	return map[string]interface{}{"enabled": true, "evicted": before - after, "cached": after}, nil
}

// === Screen Handlers ===

type screenConvertArgs struct {
	Value      float64 `json:"value"`
	Direction  string  `json:"direction"`
	DensityDPI int     `json:"density_dpi"`
}

// ConvertResult is the outcome of a dp/px conversion.
type ConvertResult struct {
	Value     float64 `json:"value"`
	Direction string  `json:"direction"`
	Density   float64 `json:"density"`
	Result    float64 `json:"result"`
	Rounded   int     `json:"rounded"`
}

func (s *Server) handleScreenConvert(args json.RawMessage) (interface{}, error) {
	var a screenConvertArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	m := s.metrics
	if a.DensityDPI != 0 {
		var err error
		m, err = screen.MetricsForDPI(screen.ScreenWidthPixels(s.metrics), screen.ScreenHeightPixels(s.metrics), a.DensityDPI)
		if err != nil {
			return nil, err
		}
	}

	res := &ConvertResult{Value: a.Value, Direction: a.Direction, Density: m.Density}
	switch a.Direction {
	case "dp_to_px":
		res.Result = screen.DpToPx(m, a.Value)
		res.Rounded = screen.DpToPxInt(m, a.Value)
	case "px_to_dp":
		res.Result = screen.PxToDp(m, a.Value)
		res.Rounded = screen.PxToDpInt(m, a.Value)
	default:
		return nil, fmt.Errorf("direction must be dp_to_px or px_to_dp, got %q", a.Direction)
	}
	return res, nil
}

// === String Handlers ===

type stringValidateArgs struct {
	Value string `json:"value"`
	Kind  string `json:"kind"`
}

func (s *Server) handleStringValidate(args json.RawMessage) (interface{}, error) {
	var a stringValidateArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	var valid bool
	switch a.Kind {
	case "empty":
		valid = strutil.IsEmpty(a.Value)
	case "ipv4":
		valid = strutil.IsIPv4Address(a.Value)
	case "email":
		valid = strutil.IsEmail(a.Value)
	default:
		return nil, fmt.Errorf("kind must be empty, ipv4 or email, got %q", a.Kind)
	}
	return map[string]interface{}{"kind": a.Kind, "valid": valid}, nil
}

type stringURLCodecArgs struct {
	Value     string `json:"value"`
	Operation string `json:"operation"`
	Charset   string `json:"charset"`
}

func (s *Server) handleStringURLCodec(args json.RawMessage) (interface{}, error) {
	var a stringURLCodecArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	var iso bool
	switch strings.ToLower(a.Charset) {
	case "", "utf-8", "utf8":
	case "iso-8859-1", "latin1":
		iso = true
	default:
		return nil, fmt.Errorf("unsupported charset %q", a.Charset)
	}

	var (
		out string
		err error
	)
	switch a.Operation {
	case "encode":
		if iso {
			out = strutil.EncodeURLISO(a.Value)
		} else {
			out = strutil.EncodeURL(a.Value)
		}
	case "decode":
		if iso {
			out, err = strutil.DecodeURLISO(a.Value)
		} else {
			out, err = strutil.DecodeURL(a.Value)
		}
	default:
		return nil, fmt.Errorf("operation must be encode or decode, got %q", a.Operation)
	}
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"result": out}, nil
}

type stringDigestArgs struct {
	Value     string `json:"value"`
	Algorithm string `json:"algorithm"`
	PadTo     int    `json:"pad_to"`
}

func (s *Server) handleStringDigest(args json.RawMessage) (interface{}, error) {
	var a stringDigestArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Algorithm == "" {
		a.Algorithm = "MD5"
	}

	digest, err := strutil.DigestString(a.Value, a.Algorithm, a.PadTo)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"algorithm": a.Algorithm, "digest": digest}, nil
}

type stringResolveEntitiesArgs struct {
	Value string `json:"value"`
	Mode  string `json:"mode"`
}

func (s *Server) handleStringResolveEntities(args json.RawMessage) (interface{}, error) {
	var a stringResolveEntitiesArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	switch a.Mode {
	case "", "entity":
		return map[string]interface{}{"result": strutil.ResolveEntity(a.Value)}, nil
	case "html":
		return map[string]interface{}{"result": strutil.UnescapeHTML(a.Value)}, nil
	default:
		return nil, fmt.Errorf("mode must be entity or html, got %q", a.Mode)
	}
}

type stringLinesArgs struct {
	Operation string   `json:"operation"`
	Text      string   `json:"text"`
	Items     []string `json:"items"`
	SkipEmpty bool     `json:"skip_empty"`
	Query     string   `json:"query"`
	Delimiter string   `json:"delimiter"`
	MaxLength int      `json:"max_length"`
}

func (s *Server) handleStringLines(args json.RawMessage) (interface{}, error) {
	var a stringLinesArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	switch a.Operation {
	case "split":
		return linesResult(strutil.SplitLines(a.Text, a.SkipEmpty)), nil
	case "find":
		return linesResult(strutil.FindLinesContaining(a.Text, a.Query)), nil
	case "fast_split":
		if utf8.RuneCountInString(a.Delimiter) != 1 {
			return nil, fmt.Errorf("delimiter must be a single character, got %q", a.Delimiter)
		}
		delim, _ := utf8.DecodeRuneInString(a.Delimiter)
		return linesResult(strutil.FastSplit(a.Text, delim)), nil
	case "ellipsize":
		return map[string]interface{}{"result": strutil.Ellipsize(a.Text, a.MaxLength)}, nil
	case "join":
		return map[string]interface{}{"result": strutil.JoinOnComma(a.Items)}, nil
	case "concat":
		return map[string]interface{}{"result": strutil.ConcatLines(a.Items)}, nil
	default:
		return nil, fmt.Errorf("unknown operation %q", a.Operation)
	}
}

func linesResult(lines []string) map[string]interface{} {
	if lines == nil {
		lines = []string{}
	}
	return map[string]interface{}{"lines": lines, "count": len(lines)}
}
