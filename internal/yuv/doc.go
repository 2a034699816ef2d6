// Package yuv decodes YUV420SP (NV21) camera frames into per-channel RGB statistics.
//
// A frame is a luma (Y) plane of width*height bytes followed by an interleaved
// chroma plane of V,U byte pairs, one pair per 2x2 luma block. Every pixel is
// converted to RGB with the fixed-point coefficients used by Android camera
// pipelines, packed into a 24-bit value, and its red, green and blue bytes are
// accumulated. No pixel is ever stored; only the three totals survive a call.
//
// # Absent Frames
//
// A nil frame is "no data". Sums and Averages report it as a nil result with a
// nil error, while ChannelAverage reports 0. The two policies differ on
// purpose: callers that polled single channels historically treated a missing
// frame as black.
//
// # Error Handling
//
// Functions return errors for invalid inputs such as:
//   - Non-positive width or height (ErrDegenerateFrame)
//   - A frame shorter than its luma plane (ErrShortFrame)
//   - A channel outside Red, Green, Blue (ErrUnknownChannel)
//
// A chroma plane that is short or missing is not an error: rows whose chroma
// offset runs past the buffer keep using the last (u,v) pair read on that row.
//
// # Thread Safety
//
// All functions are stateless and only read the frame, so they can be called
// concurrently on shared buffers as long as nobody writes to them meanwhile.
package yuv
