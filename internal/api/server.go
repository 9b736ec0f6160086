// Package api serves a loaded MNIST dataset over HTTP for downstream
// tooling. The endpoints are read-only; the dataset never changes while
// the server runs.
package api

import (
	"encoding/base64"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v5"

	"github.com/samcharles93/mnistetl/internal/dataset"
)

// Source is the read access the server needs from a dataset handle.
type Source interface {
	Shape() dataset.Shape
	InstanceAt(i int) ([]uint8, uint8, error)
	Len() int
}

type Server struct {
	src Source
	id  string
}

func NewServer(src Source) *Server {
	return &Server{
		src: src,
		id:  "ds_" + uuid.NewString(),
	}
}

func (s *Server) Register(e *echo.Echo) {
	e.GET("/v1/dataset", s.handleDataset)
	e.GET("/v1/instances/:index", s.handleInstance)
}

func (s *Server) handleDataset(c *echo.Context) error {
	shape := s.src.Shape()
	return writeJSON(c, http.StatusOK, DatasetResponse{
		ID:         s.id,
		Object:     "dataset",
		ImageCount: shape.ImageCount,
		ImageSize:  shape.ImageSize,
		LabelCount: shape.LabelCount,
		LabelWidth: shape.LabelWidth,
	})
}

func (s *Server) handleInstance(c *echo.Context) error {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return writeBadRequest(c, "index must be an integer")
	}

	img, label, err := s.src.InstanceAt(index)
	if err != nil {
		if errors.Is(err, dataset.ErrIndexOutOfBounds) {
			return writeNotFound(c, err.Error())
		}
		return writeError(c, http.StatusInternalServerError, "server_error", err.Error(), "", "")
	}

	return writeJSON(c, http.StatusOK, InstanceResponse{
		ID:     "inst_" + uuid.NewString(),
		Object: "instance",
		Index:  index,
		Label:  label,
		Pixels: base64.StdEncoding.EncodeToString(img),
	})
}
