package handlers

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/dskvich/image-api/pkg/domain"
	"github.com/samber/lo"
)

type ImageGenerator interface {
	Generate(ctx context.Context, req domain.GenerationRequest) domain.GenerationResult
}

type generateRequest struct {
	Prompt   string `json:"prompt"`
	Provider string `json:"provider,omitempty"`
	Width    *int   `json:"width,omitempty"`
	Height   *int   `json:"height,omitempty"`
}

type generateResponse struct {
	ImageB64 string `json:"image_b64"`
	Provider string `json:"provider"`
	Model    string `json:"model,omitempty"`
	Mode     string `json:"mode"`
	Note     string `json:"note,omitempty"`
}

func Generate(generator ImageGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in generateRequest
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			respondError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}

		req, err := in.toDomain()
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}

		result := generator.Generate(r.Context(), req)

		respondJSON(w, http.StatusOK, generateResponse{
			ImageB64: base64.StdEncoding.EncodeToString(result.ImageData),
			Provider: result.Provider,
			Model:    result.Model,
			Mode:     string(result.Mode),
			Note:     result.Note,
		})
	}
}

// toDomain validates and applies defaults. Anything rejected here never
// reaches the generator.
func (in generateRequest) toDomain() (domain.GenerationRequest, error) {
	prompt := strings.TrimSpace(in.Prompt)
	if len(prompt) < domain.MinPromptLength {
		return domain.GenerationRequest{}, errors.New("prompt is required and must be at least 3 characters")
	}

	width := lo.FromPtrOr(in.Width, domain.DefaultDimension)
	height := lo.FromPtrOr(in.Height, domain.DefaultDimension)
	for name, v := range map[string]int{"width": width, "height": height} {
		if v < domain.MinDimension || v > domain.MaxDimension {
			return domain.GenerationRequest{}, fmt.Errorf("%s must be between %d and %d", name, domain.MinDimension, domain.MaxDimension)
		}
	}

	return domain.GenerationRequest{
		Prompt:   prompt,
		Provider: in.Provider,
		Width:    width,
		Height:   height,
	}, nil
}
