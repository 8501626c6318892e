package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/blockcanvas/pkg/buildinfo"
	"github.com/matzehuels/blockcanvas/pkg/canvas"
	"github.com/matzehuels/blockcanvas/pkg/errors"
	"github.com/matzehuels/blockcanvas/pkg/gaps"
	"github.com/matzehuels/blockcanvas/pkg/geom"
	"github.com/matzehuels/blockcanvas/pkg/nav"
	"github.com/matzehuels/blockcanvas/pkg/viewport"
)

// =============================================================================
// Response Types
// =============================================================================

// HealthResponse is returned by /healthz.
type HealthResponse struct {
	Status string         `json:"status"`
	Build  buildinfo.Info `json:"build"`
}

// BlockResponse is the JSON form of a block.
type BlockResponse struct {
	ID       string        `json:"id"`
	Col      int           `json:"col"`
	Row      int           `json:"row"`
	Width    float64       `json:"width"`
	Height   float64       `json:"height"`
	OffsetX  float64       `json:"offset_x"`
	OffsetY  float64       `json:"offset_y"`
	Lines    int           `json:"lines"`
	Gaps     []gaps.Gap    `json:"gaps"`
	Cursor   canvas.Cursor `json:"cursor"`
	Bounds   geom.Bounds   `json:"bounds"`
	Selected bool          `json:"selected"`
}

// BlocksResponse lists every block.
type BlocksResponse struct {
	Selected string          `json:"selected,omitempty"`
	Blocks   []BlockResponse `json:"blocks"`
}

// NavigateResponse is the outcome of a navigation.
type NavigateResponse struct {
	Moved     bool           `json:"moved"`
	ID        string         `json:"id"`
	Direction nav.Direction  `json:"direction"`
	Score     float64        `json:"score"`
	Bounds    geom.Bounds    `json:"bounds"`
	Viewport  viewport.Point `json:"viewport"`
}

// CenterResponse reports the viewport origin after centering.
type CenterResponse struct {
	ID       string         `json:"id"`
	Viewport viewport.Point `json:"viewport"`
}

// RowsResponse pairs a logical row with its pixel offset.
type RowsResponse struct {
	ID     string  `json:"id"`
	Row    int     `json:"row"`
	PixelY float64 `json:"pixel_y"`
}

// ViewportResponse describes the viewport.
type ViewportResponse struct {
	X         float64         `json:"x"`
	Y         float64         `json:"y"`
	Width     float64         `json:"width"`
	Height    float64         `json:"height"`
	Animating bool            `json:"animating"`
	Target    *viewport.Point `json:"target,omitempty"`
	Dragging  bool            `json:"dragging"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

// DragRequest moves a block by a pixel delta.
type DragRequest struct {
	DX float64 `json:"dx"`
	DY float64 `json:"dy"`
}

// PanRequest is a pointer move over the viewport.
type PanRequest struct {
	MovementX float64          `json:"movement_x"`
	MovementY float64          `json:"movement_y"`
	Buttons   viewport.Buttons `json:"buttons"`
}

// =============================================================================
// Handlers
// =============================================================================

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Build: buildinfo.Get()})
}

func (s *Server) handleBlocks(w http.ResponseWriter, r *http.Request) {
	var resp BlocksResponse
	s.withCanvas(func(c *canvas.Canvas) {
		if sel, ok := c.Selected(); ok {
			resp.Selected = sel.ID
		}
		resp.Blocks = make([]BlockResponse, 0, c.Len())
		for _, b := range c.Blocks() {
			resp.Blocks = append(resp.Blocks, blockResponse(c, b))
		}
	})
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleBlock(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var (
		resp BlockResponse
		err  error
	)
	s.withCanvas(func(c *canvas.Canvas) {
		b, ok := c.Block(id)
		if !ok {
			err = blockNotFound(id)
			return
		}
		resp = blockResponse(c, b)
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSelect(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var (
		resp BlockResponse
		err  error
	)
	s.withCanvas(func(c *canvas.Canvas) {
		if err = c.Select(id); err != nil {
			return
		}
		b, _ := c.Block(id)
		resp = blockResponse(c, b)
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleNavigate(w http.ResponseWriter, r *http.Request) {
	dir, err := nav.ParseDirection(chi.URLParam(r, "direction"))
	if err != nil {
		writeError(w, err)
		return
	}

	var resp NavigateResponse
	s.withCanvas(func(c *canvas.Canvas) {
		if _, ok := c.Selected(); !ok {
			err = errors.New(errors.ErrCodeNoSelection, "no block selected")
			return
		}
		res := c.Navigate(dir)
		resp = NavigateResponse{
			Moved:     res.Moved,
			ID:        res.ID,
			Direction: dir,
			Score:     res.Score,
			Bounds:    res.Bounds,
			Viewport:  destination(c.Viewport()),
		}
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCenter(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var (
		resp CenterResponse
		err  error
	)
	s.withCanvas(func(c *canvas.Canvas) {
		if err = c.CenterOn(id); err != nil {
			return
		}
		resp = CenterResponse{ID: id, Viewport: destination(c.Viewport())}
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRows(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	q := r.URL.Query()

	var (
		resp RowsResponse
		err  error
	)
	switch {
	case q.Has("pixel_y"):
		var y float64
		if y, err = strconv.ParseFloat(q.Get("pixel_y"), 64); err != nil {
			writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "pixel_y must be a number"))
			return
		}
		if err = errors.ValidateFinite("pixel_y", y); err != nil {
			writeError(w, err)
			return
		}
		s.withCanvas(func(c *canvas.Canvas) {
			resp.Row, err = c.PixelRowToLogicalRowIn(id, y)
			if err == nil {
				resp.PixelY, err = c.LogicalRowToPixel(id, resp.Row)
			}
		})
	case q.Has("row"):
		row, perr := strconv.Atoi(q.Get("row"))
		if perr != nil || row < 0 {
			writeError(w, errors.New(errors.ErrCodeInvalidInput, "row must be a non-negative integer"))
			return
		}
		resp.Row = row
		s.withCanvas(func(c *canvas.Canvas) {
			resp.PixelY, err = c.LogicalRowToPixel(id, row)
		})
	default:
		writeError(w, errors.New(errors.ErrCodeInvalidInput, "pixel_y or row is required"))
		return
	}
	if err != nil {
		writeError(w, err)
		return
	}
	resp.ID = id
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDrag(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req DragRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	var (
		resp BlockResponse
		err  error
	)
	s.withCanvas(func(c *canvas.Canvas) {
		if err = c.DragBlock(id, req.DX, req.DY); err != nil {
			return
		}
		b, _ := c.Block(id)
		resp = blockResponse(c, b)
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDrop(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var (
		resp BlockResponse
		err  error
	)
	s.withCanvas(func(c *canvas.Canvas) {
		if err = c.DropBlock(id); err != nil {
			return
		}
		b, _ := c.Block(id)
		resp = blockResponse(c, b)
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleViewport(w http.ResponseWriter, r *http.Request) {
	var resp ViewportResponse
	s.withCanvas(func(c *canvas.Canvas) {
		v := c.Viewport()
		v.Tick()
		resp = viewportResponse(v)
	})
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handlePan(w http.ResponseWriter, r *http.Request) {
	var req PanRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	var resp ViewportResponse
	s.withCanvas(func(c *canvas.Canvas) {
		v := c.Viewport()
		v.PointerMove(viewport.PointerEvent{
			MovementX: req.MovementX,
			MovementY: req.MovementY,
			Buttons:   req.Buttons,
		})
		resp = viewportResponse(v)
	})
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRelease(w http.ResponseWriter, r *http.Request) {
	var resp ViewportResponse
	s.withCanvas(func(c *canvas.Canvas) {
		v := c.Viewport()
		v.PointerUp()
		resp = viewportResponse(v)
	})
	writeJSON(w, http.StatusOK, resp)
}

// =============================================================================
// Helpers
// =============================================================================

func blockResponse(c *canvas.Canvas, b *canvas.Block) BlockResponse {
	sel, _ := c.Selected()
	gs := b.Gaps.Gaps()
	if gs == nil {
		gs = []gaps.Gap{}
	}
	return BlockResponse{
		ID:       b.ID,
		Col:      b.Col,
		Row:      b.Row,
		Width:    b.Width,
		Height:   b.Height,
		OffsetX:  b.OffsetX,
		OffsetY:  b.OffsetY,
		Lines:    b.Lines,
		Gaps:     gs,
		Cursor:   b.Cursor,
		Bounds:   b.Bounds(c.Grid()),
		Selected: sel != nil && sel.ID == b.ID,
	}
}

func viewportResponse(v *viewport.Viewport) ViewportResponse {
	resp := ViewportResponse{
		X:         v.X,
		Y:         v.Y,
		Width:     v.Width,
		Height:    v.Height,
		Animating: v.Animating(),
		Dragging:  v.Dragging(),
	}
	if t, ok := v.Target(); ok {
		resp.Target = &t
	}
	return resp
}

// destination is where the viewport will rest once any animation finishes.
func destination(v *viewport.Viewport) viewport.Point {
	if t, ok := v.Target(); ok {
		return t
	}
	return v.Origin()
}

func decode(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid request body")
	}
	return nil
}

func blockNotFound(id string) error {
	return errors.New(errors.ErrCodeBlockNotFound, "block %q not found", id)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	writeJSON(w, statusFor(err), ErrorResponse{Code: code, Message: errors.UserMessage(err)})
}

func statusFor(err error) int {
	switch {
	case errors.IsNotFound(err):
		return http.StatusNotFound
	case errors.IsInvalid(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
