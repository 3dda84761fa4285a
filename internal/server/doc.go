// Package server implements the MCP (Model Context Protocol) server for bitmap tools.
//
// This package provides a JSON-RPC 2.0 server that exposes sampled bitmap
// decoding, view capture, screen unit conversion and string helpers through
// the MCP protocol.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Bitmap Operations:
//   - bitmap_probe: Read image bounds without decoding pixels
//   - bitmap_sample_size: Compute the power-of-two sample size for a requested box
//   - bitmap_decode_sampled: Decode an image reduced by its sample size
//   - bitmap_capture_scroll: Stack images like scroll view children and capture them
//   - bitmap_cache_clear: Release cached decoded bitmaps
//
// Screen Units:
//   - screen_convert: Convert between dp and px
//
// String Utilities:
//   - string_validate: Empty, IPv4 and email checks
//   - string_url_codec: Form encoding in UTF-8 or ISO-8859-1
//   - string_digest: MD5, SHA and BLAKE2b hex digests
//   - string_resolve_entities: XML entity and HTML unescaping
//   - string_lines: Line splitting, searching, ellipsizing and joining
//
// # Bitmap Caching
//
// Decoded bitmaps are cached by path, requested size, pixel format and
// filter unless the configuration disables it. bitmap_cache_clear evicts
// entries; otherwise the cache lives as long as the process.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
//	cfg, err := config.Load("")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	srv := server.New(cfg)
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
