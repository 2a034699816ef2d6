// Package frames loads raw YUV420SP captures from disk and streams.
//
// A capture is a plain concatenation of frames with no header; the caller
// supplies width and height. Frame length is width*height*3/2 (luma plane
// plus half-size chroma plane, rounded down).
package frames
