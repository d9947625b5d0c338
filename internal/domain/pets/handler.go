package pets

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"petshop-api/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta el recurso Pet bajo /api/Pet (mismo casing que
// los clientes existentes).
func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/api/Pet", func(pr chi.Router) {
		pr.Post("/Pets", createPetHandler(svc, log))
		pr.Get("/Pets", listPetsHandler(svc, log))
		pr.Patch("/Pets/{id}", updatePetHandler(svc))
		pr.Delete("/Pets/{id}", deletePetHandler(svc, log))
	})
}

type petRequest struct {
	Nome   string `json:"nome"`
	Tipo   string `json:"tipo"`
	Raca   string `json:"raca"`
	DonoID int64  `json:"dono_id"`
}

type updatePetRequest struct {
	// Punteros para PATCH real: nil = no tocar.
	Nome *string `json:"nome"`
	Tipo *string `json:"tipo"`
	Raca *string `json:"raca"`
}

type petResponse struct {
	ID     int64  `json:"id"`
	Nome   string `json:"nome"`
	Tipo   string `json:"tipo"`
	Raca   string `json:"raca"`
	DonoID int64  `json:"dono_id"`
}

type successResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func createPetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req petRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := svc.Create(r.Context(), CreateInput{
			Nome:   req.Nome,
			Tipo:   req.Tipo,
			Raca:   req.Raca,
			DonoID: req.DonoID,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, "dono_id é obrigatório", http.StatusBadRequest)
				return
			}
			// FK inválida u otra falla de storage: mensaje genérico.
			log.Error("create pet failed", map[string]any{"dono_id": req.DonoID, "error": err.Error()})
			http.Error(w, "erro ao cadastrar pet", http.StatusBadRequest)
			return
		}

		log.Info("pet created", map[string]any{"pet_id": p.ID, "dono_id": p.DonoID})
		writeJSON(w, http.StatusOK, successResponse{Success: true, Message: "pet cadastrado com sucesso"})
	}
}

func listPetsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			log.Error("list pets failed", map[string]any{"error": err.Error()})
			http.Error(w, "erro ao buscar pets", http.StatusBadRequest)
			return
		}

		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(p))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func updatePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(chi.URLParam(r, "id"))
		if !ok {
			http.Error(w, "pet não encontrado", http.StatusNotFound)
			return
		}

		var req updatePetRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := svc.Update(r.Context(), id, UpdateInput{
			Nome: req.Nome,
			Tipo: req.Tipo,
			Raca: req.Raca,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				http.Error(w, "pet não encontrado", http.StatusNotFound)
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "erro ao atualizar pet", http.StatusBadRequest)
			}
			return
		}

		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

func deletePetHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(chi.URLParam(r, "id"))
		if !ok {
			http.Error(w, "pet não encontrado", http.StatusNotFound)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "pet não encontrado", http.StatusNotFound)
				return
			}
			log.Error("delete pet failed", map[string]any{"pet_id": id, "error": err.Error()})
			http.Error(w, "erro ao deletar pet", http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusOK, successResponse{Success: true, Message: "pet deletado com sucesso"})
	}
}

func toPetResponse(p Pet) petResponse {
	return petResponse{
		ID:     p.ID,
		Nome:   p.Nome,
		Tipo:   p.Tipo,
		Raca:   p.Raca,
		DonoID: p.DonoID,
	}
}

func parseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// writeJSON está duplicado a propósito en los handlers de cada módulo
// para no crear helpers compartidos antes de tiempo.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
