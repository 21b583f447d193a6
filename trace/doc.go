// Package trace holds the recorded call trace and the host halves of the
// recorder interfaces.
//
// A trace is a sequence of FuncCall events, one JSON object per line:
//
//	{"ExportArgs":{"method":"add","args":["3","4"]}}
//	{"ExportRet":{"method":"add","ret":"7"}}
//
// Every argument and return value is WAVE text. Within the export channel
// each ExportArgs is followed by at most one ExportRet for the same method.
// Each ImportArgs is followed by exactly one ImportRet unless the import
// ends the process (see ExitPrefix), in which case the trace stops there.
//
// Recorder appends events to a Sink as the component runs. StreamSink
// flushes after every event so an interrupted run keeps what it recorded.
// Replayer serves a loaded trace back and reports divergence as
// replay_mismatch errors.
package trace
