// Package sink renders chart figures to output formats.
//
// Figures built by the chart package are plain descriptions; this package
// materializes them. [RenderSVG] emits hand-built vector markup and
// [RenderPNG] rasterizes through fogleman/gg. Word clouds are placed by the
// psykhi/wordclouds engine and are raster-only: asking for an SVG word
// cloud returns [ErrRasterOnly].
package sink
