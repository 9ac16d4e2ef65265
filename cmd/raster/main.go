package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/holikma/raster"
	"github.com/holikma/raster/utils"
	"golang.org/x/image/bmp"
	"golang.org/x/term"
)

const HelpBanner = `
┬─┐┌─┐┌─┐┌┬┐┌─┐┬─┐
├┬┘├─┤└─┐ │ ├┤ ├┬┘
┴└─┴ ┴└─┘ ┴ └─┘┴└─

Pixel exact line and circle rasterizer.
    Version: %s

`

// pipeName is the file name that indicates stdout is being used.
const pipeName = "-"

// Version indicates the current build version.
var Version string

// segment holds the two points defining a shape on the command line.
type segment struct {
	start, end image.Point
}

// segments collects the repeated shape flags.
type segments []segment

func (s *segments) String() string {
	parts := make([]string, 0, len(*s))
	for _, seg := range *s {
		parts = append(parts, fmt.Sprintf("%d,%d:%d,%d", seg.start.X, seg.start.Y, seg.end.X, seg.end.Y))
	}
	return strings.Join(parts, " ")
}

func (s *segments) Set(value string) error {
	seg, err := parseSegment(value)
	if err != nil {
		return err
	}
	*s = append(*s, seg)
	return nil
}

var (
	// Flags
	width       = flag.Int("width", 320, "Canvas width")
	height      = flag.Int("height", 240, "Canvas height")
	background  = flag.String("bg", "white", "Background color (name or hex)")
	penColor    = flag.String("color", "black", "Drawing color (name or hex)")
	algorithm   = flag.String("alg", string(raster.Bresenham), "Line algorithm: dda, bresenham or circle")
	destination = flag.String("out", pipeName, "Destination (.png, .jpg or .bmp)")
	debug       = flag.Bool("debug", false, "Log surface lifecycle events")

	lines   segments
	circles segments
)

func main() {
	log.SetFlags(0)

	flag.Var(&lines, "line", "Line as x0,y0:x1,y1 (repeatable)")
	flag.Var(&circles, "circle", "Circle as cx,cy:ex,ey, the edge point sets the radius (repeatable)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, HelpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	if len(lines) == 0 && len(circles) == 0 {
		flag.Usage()
		log.Fatal(utils.DecorateText("\nPlease provide at least one -line or -circle to draw!", utils.ErrorMessage))
	}

	if *debug {
		raster.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	now := time.Now()
	err := run(*destination)
	printStatus(*destination, err)
	fmt.Fprintf(os.Stderr, "\nExecution time: %s\n", utils.DecorateText(utils.FormatElapsed(time.Since(now)), utils.SuccessMessage))
}

// run draws every requested shape and encodes the result into the destination.
func run(out string) error {
	bg, err := raster.ParseColor(*background)
	if err != nil {
		return err
	}
	col, err := raster.ParseColor(*penColor)
	if err != nil {
		return err
	}
	alg, err := raster.ParseAlgorithm(*algorithm)
	if err != nil {
		return err
	}

	var dirty image.Rectangle
	surface, err := raster.NewSurface(*width, *height,
		raster.WithBackground(bg),
		raster.WithRedisplay(func(r image.Rectangle) {
			dirty = dirty.Union(r)
		}),
	)
	if err != nil {
		return err
	}
	if surface.IsEmpty() {
		return errors.New("the canvas has no pixels to draw on")
	}

	if err := draw(surface, col, alg); err != nil {
		return err
	}
	log.Printf("%s %v", utils.DecorateText("Changed region:", utils.StatusMessage), dirty)

	return save(out, surface.Image())
}

// save encodes img into the destination. The error of closing a regular file is
// reported as well, since buffered data is only flushed at that point.
func save(out string, img image.Image) (err error) {
	dst, err := openDestination(out)
	if err != nil {
		return err
	}
	if out != pipeName {
		defer func() {
			if cerr := dst.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("unable to close the destination file: %w", cerr)
			}
		}()
	}

	return encodeImg(dst, img)
}

// draw renders the lines with the selected algorithm, followed by the circles.
func draw(s *raster.Surface, col color.NRGBA, alg raster.Algorithm) error {
	for _, l := range lines {
		if err := s.DrawLine(l.start, l.end, col, alg); err != nil {
			return err
		}
	}
	for _, c := range circles {
		if err := s.DrawShape(raster.Circle, c.start, c.end, col); err != nil {
			return err
		}
	}
	return nil
}

// parseSegment converts the x0,y0:x1,y1 notation to a segment.
func parseSegment(s string) (segment, error) {
	a, b, ok := strings.Cut(s, ":")
	if !ok {
		return segment{}, fmt.Errorf("invalid shape %q, expected x0,y0:x1,y1", s)
	}
	start, err := parsePoint(a)
	if err != nil {
		return segment{}, err
	}
	end, err := parsePoint(b)
	if err != nil {
		return segment{}, err
	}
	return segment{start: start, end: end}, nil
}

// parsePoint converts the x,y notation to an image.Point.
func parsePoint(s string) (image.Point, error) {
	xs, ys, ok := strings.Cut(strings.TrimSpace(s), ",")
	if !ok {
		return image.Point{}, fmt.Errorf("invalid point %q, expected x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return image.Point{}, fmt.Errorf("invalid x coordinate in %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return image.Point{}, fmt.Errorf("invalid y coordinate in %q: %w", s, err)
	}
	return image.Pt(x, y), nil
}

// openDestination returns a writer for a regular file or for the stdout pipe.
func openDestination(out string) (io.WriteCloser, error) {
	if out == pipeName {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return nil, errors.New("`-` should be used with a pipe for stdout")
		}
		return os.Stdout, nil
	}
	if !isValidExtension(filepath.Ext(out)) {
		return nil, fmt.Errorf("%v file type not supported", filepath.Ext(out))
	}
	dst, err := os.OpenFile(out, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("unable to create the destination file: %w", err)
	}
	return dst, nil
}

// encodeImg encodes an image to a destination of type io.Writer.
// Files are encoded by extension, anything else as png.
func encodeImg(w io.Writer, img image.Image) error {
	switch w := w.(type) {
	case *os.File:
		switch strings.ToLower(filepath.Ext(w.Name())) {
		case ".jpg", ".jpeg":
			return jpeg.Encode(w, img, &jpeg.Options{Quality: 100})
		case ".bmp":
			return bmp.Encode(w, img)
		default:
			return png.Encode(w, img)
		}
	default:
		return png.Encode(w, img)
	}
}

// printStatus displays the relevant information about the drawing process.
func printStatus(fname string, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s%s",
			utils.DecorateText("\nError drawing the image:", utils.ErrorMessage),
			utils.DecorateText(fmt.Sprintf("\n\tReason: %v\n", err), utils.DefaultMessage),
		)
		os.Exit(1)
	}
	if fname != pipeName {
		fmt.Fprintf(os.Stderr, "\nThe image has been saved as: %s\n",
			utils.DecorateText(filepath.Base(fname), utils.SuccessMessage),
		)
	}
}

// isValidExtension checks for the supported extensions.
func isValidExtension(ext string) bool {
	for _, ex := range []string{".png", ".jpg", ".jpeg", ".bmp"} {
		if ex == strings.ToLower(ext) {
			return true
		}
	}
	return false
}
