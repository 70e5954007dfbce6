package httpapi

import (
	"sort"

	"github.com/katalvlaran/pathgrid/grid"
	"github.com/katalvlaran/pathgrid/maze"
	"github.com/katalvlaran/pathgrid/search"
	"github.com/katalvlaran/pathgrid/service"
)

// WeightDTO is one weighted cell.
type WeightDTO struct {
	Row    int `json:"row"`
	Col    int `json:"col"`
	Weight int `json:"weight"`
}

// SearchRequest is the body of POST /v1/search.
type SearchRequest struct {
	Rows     int             `json:"rows" binding:"required,min=1"`
	Cols     int             `json:"cols" binding:"required,min=1"`
	Walls    []grid.Position `json:"walls"`
	Weights  []WeightDTO     `json:"weights"`
	Start    grid.Position   `json:"start"`
	Goal     grid.Position   `json:"goal"`
	Strategy string          `json:"strategy" binding:"required"`
	Strict   bool            `json:"strict"`
}

// VisitDTO is one trace entry. Side is set by the bidirectional strategy only.
type VisitDTO struct {
	Row  int    `json:"row"`
	Col  int    `json:"col"`
	Side string `json:"side,omitempty"`
}

// SearchResponse is the body answered by POST /v1/search.
type SearchResponse struct {
	Strategy  string          `json:"strategy"`
	Visited   []VisitDTO      `json:"visited"`
	Path      []grid.Position `json:"path"`
	Found     bool            `json:"found"`
	Cost      int             `json:"cost"`
	ElapsedUS int64           `json:"elapsed_us"`
}

// MazeRequest is the body of POST /v1/maze.
type MazeRequest struct {
	Rows     int    `json:"rows" binding:"required,min=1"`
	Cols     int    `json:"cols" binding:"required,min=1"`
	Animated bool   `json:"animated"`
	Seed     *int64 `json:"seed"`
}

// StepDTO is one candidate-wall decision.
type StepDTO struct {
	Row  int  `json:"row"`
	Col  int  `json:"col"`
	Open bool `json:"open"`
}

// MazeResponse is the body answered by POST /v1/maze.
type MazeResponse struct {
	Generated bool            `json:"generated"`
	Rows      int             `json:"rows"`
	Cols      int             `json:"cols"`
	Walls     []grid.Position `json:"walls"`
	Weights   []WeightDTO     `json:"weights"`
	Start     *grid.Position  `json:"start,omitempty"`
	Goal      *grid.Position  `json:"goal,omitempty"`
	Steps     []StepDTO       `json:"steps"`
}

func (r SearchRequest) toService(s search.Strategy) service.SearchRequest {
	weights := make([]service.WeightedCell, len(r.Weights))
	for i, w := range r.Weights {
		weights[i] = service.WeightedCell{Pos: grid.Pos(w.Row, w.Col), Weight: w.Weight}
	}

	return service.SearchRequest{
		Rows:     r.Rows,
		Cols:     r.Cols,
		Walls:    r.Walls,
		Weights:  weights,
		Start:    r.Start,
		Goal:     r.Goal,
		Strategy: s,
		Strict:   r.Strict,
	}
}

func newSearchResponse(res *service.SearchResponse) SearchResponse {
	visited := make([]VisitDTO, len(res.Visited))
	for i, v := range res.Visited {
		visited[i] = VisitDTO{Row: v.Pos.Row, Col: v.Pos.Col, Side: v.Side.String()}
	}
	path := res.Path
	if path == nil {
		path = []grid.Position{}
	}

	return SearchResponse{
		Strategy:  res.Strategy.String(),
		Visited:   visited,
		Path:      path,
		Found:     res.Found,
		Cost:      res.Cost,
		ElapsedUS: res.Elapsed.Microseconds(),
	}
}

func newMazeResponse(req MazeRequest, res *service.MazeResponse) MazeResponse {
	out := MazeResponse{
		Generated: res.Generated,
		Rows:      req.Rows,
		Cols:      req.Cols,
		Walls:     []grid.Position{},
		Weights:   []WeightDTO{},
		Steps:     []StepDTO{},
	}
	if !res.Generated {
		return out
	}

	m := res.Maze
	out.Walls = m.WallList()
	out.Weights = weightList(m)
	out.Start, out.Goal = &m.Start, &m.Goal
	out.Steps = make([]StepDTO, len(m.Steps))
	for i, s := range m.Steps {
		out.Steps[i] = StepDTO{Row: s.Pos.Row, Col: s.Pos.Col, Open: s.Open}
	}

	return out
}

// weightList flattens maze weights in row-major order.
func weightList(m *maze.Result) []WeightDTO {
	out := make([]WeightDTO, 0, len(m.Weights))
	for p, w := range m.Weights {
		out = append(out, WeightDTO{Row: p.Row, Col: p.Col, Weight: w})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}

		return out[i].Col < out[j].Col
	})

	return out
}
