// Package svg provides a streaming SVG file writer.
package svg

import (
	"bufio"
	"fmt"
	"html"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/gmlewis/isovox/colors"
	"github.com/gmlewis/isovox/voxels"
	"github.com/klauspost/compress/gzip"
	"seehuhn.de/go/geom/path"
)

const bufSize = 1000

// Client is a streaming SVG file writer client.
type Client struct {
	wg sync.WaitGroup // ensures file is closed
	ch chan Shape

	mu  sync.RWMutex
	err error
}

// Header describes the document surface.
type Header struct {
	ID            string
	Width, Height float64
	// Background fills the whole surface. It defaults to "gray".
	Background string
}

// Shape is a filled path.
type Shape struct {
	ID   string
	Fill color.RGBA
	Path path.Path
}

// New creates a new streaming SVG file writer.
// Filenames ending in ".svgz" are gzip compressed.
func New(filename string, h Header) (*Client, error) {
	out, err := os.Create(filename)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(strings.ToLower(filename), ".svgz") {
		return NewWriter(&gzipFile{Writer: gzip.NewWriter(out), f: out}, h), nil
	}
	return NewWriter(out, h), nil
}

// NewWriter creates a new streaming SVG writer on out.
// out is closed by Close.
func NewWriter(out io.WriteCloser, h Header) *Client {
	c := &Client{ch: make(chan Shape, bufSize)}
	c.start(out, h)
	return c
}

func (c *Client) start(out io.WriteCloser, h Header) {
	c.wg.Add(1)
	go func() {
		err := writer(out, h, c.ch)
		c.mu.Lock()
		c.err = err
		c.mu.Unlock()
		c.wg.Done()
	}()
}

// Write writes a shape to the SVG file.
func (c *Client) Write(s *Shape) error {
	c.ch <- *s
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.err
}

// Close finalizes the SVG file.
func (c *Client) Close() error {
	close(c.ch)
	c.wg.Wait()
	return c.err
}

func writer(out io.WriteCloser, h Header, ch <-chan Shape) error {
	err := writeDoc(out, h, ch)
	// Drain so that Write never blocks after a failure.
	for range ch {
	}
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	return err
}

func writeDoc(out io.Writer, h Header, ch <-chan Shape) error {
	w := bufio.NewWriter(out)
	bg := h.Background
	if bg == "" {
		bg = "gray"
	}
	w.WriteString(`<svg xmlns="http://www.w3.org/2000/svg"`)
	if h.ID != "" {
		fmt.Fprintf(w, ` id=%v`, quote(h.ID))
	}
	width, height := formatFloat(h.Width), formatFloat(h.Height)
	fmt.Fprintf(w, ` width="%v" height="%v" viewBox="0 0 %v %v">`+"\n", width, height, width, height)
	fmt.Fprintf(w, `<rect width="100%%" height="100%%" fill=%v/>`+"\n", quote(bg))

	for s := range ch {
		d := PathData(s.Path)
		if d == "" {
			continue
		}
		w.WriteString("<path")
		if s.ID != "" {
			fmt.Fprintf(w, ` id=%v`, quote(s.ID))
		}
		if _, err := fmt.Fprintf(w, ` d="%v" fill="%v"/>`+"\n", d, colors.Hex(s.Fill)); err != nil {
			return fmt.Errorf("write shape %v: %v", s.ID, err)
		}
	}

	w.WriteString("</svg>\n")
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush: %v", err)
	}
	return nil
}

// PathData formats p as SVG path data, e.g. "M 0 0 L 10 0 L 10 10 Z".
func PathData(p path.Path) string {
	if p == nil {
		return ""
	}
	var sb strings.Builder
	for cmd, pts := range p {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		switch cmd {
		case path.CmdMoveTo:
			sb.WriteByte('M')
		case path.CmdLineTo:
			sb.WriteByte('L')
		case path.CmdQuadTo:
			sb.WriteByte('Q')
		case path.CmdCubeTo:
			sb.WriteByte('C')
		case path.CmdClose:
			sb.WriteByte('Z')
		}
		for _, pt := range pts {
			sb.WriteByte(' ')
			sb.WriteString(formatFloat(pt.X))
			sb.WriteByte(' ')
			sb.WriteString(formatFloat(pt.Y))
		}
	}
	return sb.String()
}

func quote(s string) string {
	return `"` + html.EscapeString(s) + `"`
}

// formatFloat prints v with at most 3 decimals.
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', 3, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}

// gzipFile closes the compressor before the file it writes to.
type gzipFile struct {
	*gzip.Writer
	f *os.File
}

func (g *gzipFile) Close() error {
	if err := g.Writer.Close(); err != nil {
		g.f.Close()
		return fmt.Errorf("gzip: %v", err)
	}
	return g.f.Close()
}

// Render streams every outline of res, in draw order, as one document.
func Render(out io.WriteCloser, h Header, res *voxels.Result) error {
	c := NewWriter(out, h)
	for _, o := range res.Outlines {
		if err := c.Write(&Shape{ID: o.ID.String(), Fill: o.Color, Path: o.Path()}); err != nil {
			c.Close()
			return err
		}
	}
	return c.Close()
}
