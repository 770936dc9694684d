// Package inspect exposes a scene's navigation model over a websocket so
// editors and debug consoles can query it while the scene is being authored.
package inspect

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/Garsondee/Scene-Walk/internal/nav"
)

// Request is one query frame sent by a client.
type Request struct {
	ID int    `json:"id,omitempty"`
	Op string `json:"op"`

	X float64 `json:"x,omitempty"`
	Y float64 `json:"y,omitempty"`

	// Path endpoints, used when Op is "path".
	StartX float64 `json:"start_x,omitempty"`
	StartY float64 `json:"start_y,omitempty"`
	GoalX  float64 `json:"goal_x,omitempty"`
	GoalY  float64 `json:"goal_y,omitempty"`
}

// Response is the answer frame for one request.
type Response struct {
	ID    int    `json:"id,omitempty"`
	Op    string `json:"op"`
	Error string `json:"error,omitempty"`

	Walkable *bool             `json:"walkable,omitempty"`
	Scale    *float64          `json:"scale,omitempty"`
	Path     []nav.Point       `json:"path,omitempty"`
	Hotspot  *nav.Hotspot      `json:"hotspot,omitempty"`
	Grid     *nav.GridStats    `json:"grid,omitempty"`
	Hotspots *nav.HotspotStats `json:"hotspots,omitempty"`
}

// Server answers navigation queries for a single loaded scene.
type Server struct {
	scene    string
	logger   *zap.Logger
	upgrader websocket.Upgrader

	mu sync.Mutex
	nv *nav.Navigator
	hm *nav.HotspotManager
}

func NewServer(scene string, nv *nav.Navigator, hm *nav.HotspotManager, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		scene:  scene,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		nv: nv,
		hm: hm,
	}
}

// Answer resolves one request against the scene. Exported separately from
// the websocket loop so the dispatch logic is testable without a socket.
func (s *Server) Answer(req Request) Response {
	s.mu.Lock()
	defer s.mu.Unlock()

	resp := Response{ID: req.ID, Op: req.Op}
	switch req.Op {
	case "walkable":
		ok := s.nv.IsPointWalkable(nav.Point{X: req.X, Y: req.Y})
		resp.Walkable = &ok
	case "scale":
		sc := s.nv.Area().ScaleAtY(req.Y)
		resp.Scale = &sc
	case "path":
		if !s.nv.HasNavigation() {
			s.nv.UpdateNavigation()
		}
		resp.Path = s.nv.FindPath(req.StartX, req.StartY, req.GoalX, req.GoalY)
		if resp.Path == nil {
			resp.Error = "no path"
		}
	case "hotspot":
		resp.Hotspot = s.hm.HotspotAt(nav.Point{X: req.X, Y: req.Y})
	case "stats":
		if !s.nv.HasNavigation() {
			s.nv.UpdateNavigation()
		}
		gs := s.nv.Grid().Stats()
		hs := s.hm.Statistics()
		resp.Grid = &gs
		resp.Hotspots = &hs
	default:
		resp.Error = fmt.Sprintf("unknown op %q", req.Op)
	}
	return resp
}

// ServeHTTP upgrades the connection and answers request frames until the
// client disconnects.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()
	s.logger.Info("inspect client connected",
		zap.String("scene", s.scene),
		zap.String("remote", conn.RemoteAddr().String()))

	for {
		var req Request
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Warn("inspect client read error", zap.Error(err))
			}
			return
		}
		resp := s.Answer(req)
		s.logger.Debug("inspect query",
			zap.String("op", req.Op),
			zap.Int("id", req.ID),
			zap.String("error", resp.Error))
		if err := conn.WriteJSON(resp); err != nil {
			s.logger.Warn("inspect client write error", zap.Error(err))
			return
		}
	}
}

// ListenAndServe blocks serving the inspect endpoint at /inspect.
func (s *Server) ListenAndServe(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/inspect", s)
	s.logger.Info("inspect server listening",
		zap.String("addr", addr),
		zap.String("scene", s.scene))
	return http.ListenAndServe(addr, mux)
}
