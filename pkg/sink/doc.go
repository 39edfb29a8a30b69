// Package sink turns computed layouts into finished documents.
//
// # Formats
//
//   - [RenderSVG] draws a linear or circular [layout.Result] as SVG
//   - [RenderPNG] and [RenderPDF] rasterize that SVG via rsvg-convert
//   - [RenderJSON] exports the raw coordinates for other tools
//
// The SVG and JSON writers need the [layout.Snapshot] the result was
// computed from: link colors come from link identities in the data, karyo
// colors from the genome rows of the filters, and feature colors from the
// configuration.
//
// # Interaction
//
// [WithHover] embeds a small script that fades all links not touching the
// chromosome under the pointer, the way the interactive viewer does.
package sink
