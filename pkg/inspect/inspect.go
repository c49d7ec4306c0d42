// Package inspect serves a rendered plot and reports the mathematical
// coordinates of points the user clicks on.
package inspect

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/willbeason/escape-fractal/pkg/plane"
)

// Click is a point selected on the served image, in raster coordinates.
type Click struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

// Point is the readback for a Click.
type Point struct {
	// PixelX and PixelY are the centred plot pixel that was clicked.
	PixelX int `json:"pixel_x"`
	PixelY int `json:"pixel_y"`

	// XOffset and YOffset are the clicked mathematical coordinates; feeding
	// them back as offsets centres the next plot on this point.
	XOffset float64 `json:"x_offset"`
	YOffset float64 `json:"y_offset"`
}

// Server answers clicks on a single finished plot.
type Server struct {
	mapper plane.Mapper
	view   plane.Viewport
	png    []byte

	// OnPoint, if set, is called for every answered click.
	OnPoint func(Point)
}

// NewServer captures the encoded image and the mapping used to draw it.
func NewServer(mapper plane.Mapper, view plane.Viewport, png []byte) *Server {
	return &Server{
		mapper: mapper,
		view:   view,
		png:    png,
	}
}

// Readback converts a raster click into plot and mathematical coordinates.
func (s *Server) Readback(c Click) (Point, error) {
	if !s.view.Contains(c.Col, c.Row) {
		return Point{}, fmt.Errorf("click (%d, %d) outside %dx%d image", c.Col, c.Row, s.view.Width, s.view.Height)
	}

	px, py := s.view.Plot(c.Col, c.Row)
	x, y := s.mapper.Readback(float64(px), float64(py))

	return Point{PixelX: px, PixelY: py, XOffset: x, YOffset: y}, nil
}

// Handler routes the page, the image and the websocket endpoint.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/plot.png", s.handleImage)
	mux.HandleFunc("/ws", s.handleWebsocket)
	return mux
}

// ListenAndServe serves until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	log.Printf("listening on http://localhost%s", addr)
	err := srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := indexTemplate.Execute(w, s.view)
	if err != nil {
		log.Printf("index: %v", err)
	}
}

func (s *Server) handleImage(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "image/png")
	_, err := w.Write(s.png)
	if err != nil {
		log.Printf("plot.png: %v", err)
	}
}

func (s *Server) handleWebsocket(w http.ResponseWriter, r *http.Request) {
	c, err := websocket.Accept(w, r, nil)
	if err != nil {
		log.Println(err)
		return
	}
	defer c.CloseNow()

	log.Printf("inspecting for %s", r.RemoteAddr)

	ctx := r.Context()
	for {
		var click Click
		err := wsjson.Read(ctx, c, &click)
		if websocket.CloseStatus(err) == websocket.StatusNormalClosure ||
			websocket.CloseStatus(err) == websocket.StatusGoingAway {
			return
		}
		if err != nil {
			log.Printf("read click: %v", err)
			return
		}

		p, err := s.Readback(click)
		if err != nil {
			c.Close(websocket.StatusPolicyViolation, err.Error())
			return
		}

		log.Printf("x_offset = %v, y_offset = %v", p.XOffset, p.YOffset)
		if s.OnPoint != nil {
			s.OnPoint(p)
		}

		err = wsjson.Write(ctx, c, p)
		if err != nil {
			log.Printf("write point: %v", err)
			return
		}
	}
}

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head><title>inspect</title></head>
<body style="background:#000;color:#ccc;font-family:monospace">
<img id="plot" src="/plot.png" width="{{.Width}}" height="{{.Height}}">
<pre id="out">Click on the image for information on a point.</pre>
<script>
const ws = new WebSocket("ws://" + location.host + "/ws");
const out = document.getElementById("out");
ws.onmessage = (e) => {
  const p = JSON.parse(e.data);
  out.textContent = "x_offset = " + p.x_offset + "\ny_offset = " + p.y_offset;
};
document.getElementById("plot").addEventListener("click", (e) => {
  ws.send(JSON.stringify({col: e.offsetX, row: e.offsetY}));
});
</script>
</body>
</html>
`))
