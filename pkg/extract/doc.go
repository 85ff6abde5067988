// Package extract builds colour-frequency tables from images.
//
// Every pixel's 24-bit RGB value is counted; alpha is ignored. Keys are
// lower-case hex without leading zeros ("ff" is pure blue) unless
// [Options.PadKeys] asks for six digits. Either form is accepted by
// palette.DeriveFill.
//
//	img, _, err := extract.DecodeFile("photo.jpeg")
//	table, err := extract.FromImage(ctx, img, extract.Options{})
//	err = extract.WriteFile("img_data.json", table)
//
// Supported inputs are png, jpeg and gif (standard library) plus bmp, tiff
// and webp (golang.org/x/image).
package extract
