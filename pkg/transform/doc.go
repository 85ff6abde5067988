// Package transform rearranges the pixels of an image.
//
// A [Strategy] permutes a flat slice of pixels in row-major order; [Apply]
// copies an image, runs the strategy and writes the pixels back. The image
// keeps its size and its colour histogram, so extracting colours from the
// result yields the same frequency table as the input.
//
//	img, _, _ := extract.DecodeFile("photo.jpeg")
//	out := transform.Apply(img, transform.SortRGB{})
//	err := transform.WriteFile(transform.OutputPath("photo.jpeg"), out)
package transform
