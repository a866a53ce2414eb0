// Package server implements the hookdom preview server.
//
// A Server owns one memdom document and one render.Renderer. Both are only
// ever touched by a single event-loop goroutine: HTTP handlers, WebSocket
// readers and clock ticks post work to the loop instead of calling the
// renderer directly. After every loop task the document's mutation journal is
// drained and broadcast to connected browsers as a patch frame.
//
// Routes:
//
//	GET  /          page with the current HTML and the client script
//	GET  /ws        WebSocket carrying patch frames out and event frames in
//	GET  /snapshot  standalone HTML page of the current tree
//	POST /snapshot  upload the current tree to the configured snapshot store
//	GET  /metrics   Prometheus metrics of the renderer and the server
//	GET  /healthz   liveness probe
//
// Frames are JSON objects:
//
//	server → client: {"type":"init","seq":0,"html":"..."}
//	server → client: {"type":"patch","seq":3,"mutations":[...],"html":"..."}
//	client → server: {"type":"event","event":"click","target":"n7","value":""}
package server
