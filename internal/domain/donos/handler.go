package donos

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"petshop-api/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta el recurso Dono bajo /api/Dono, con el mismo
// casing de rutas que consumen los clientes web y mobile existentes.
func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/api/Dono", func(dr chi.Router) {
		dr.Post("/Donos", createDonoHandler(svc, log))
		dr.Get("/Donos", listDonosHandler(svc, log))
		dr.Patch("/Donos/{id}", updateDonoHandler(svc))
		dr.Delete("/Donos/{id}", deleteDonoHandler(svc, log))
	})
}

type donoRequest struct {
	Nome     string `json:"nome"`
	CPF      string `json:"cpf"`
	Telefone string `json:"telefone"`
}

type updateDonoRequest struct {
	// Punteros para PATCH real: nil = no tocar.
	Nome     *string `json:"nome"`
	CPF      *string `json:"cpf"`
	Telefone *string `json:"telefone"`
}

type donoResponse struct {
	ID       int64  `json:"id"`
	Nome     string `json:"nome"`
	CPF      string `json:"cpf"`
	Telefone string `json:"telefone"`
}

type successResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func createDonoHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req donoRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		d, err := svc.Create(r.Context(), CreateInput{
			Nome:     req.Nome,
			CPF:      req.CPF,
			Telefone: req.Telefone,
		})
		if err != nil {
			// No propagamos detalles del storage al cliente.
			log.Error("create dono failed", map[string]any{"error": err.Error()})
			http.Error(w, "erro ao cadastrar dono", http.StatusBadRequest)
			return
		}

		log.Info("dono created", map[string]any{"dono_id": d.ID})
		writeJSON(w, http.StatusOK, successResponse{Success: true, Message: "dono cadastrado com sucesso"})
	}
}

func listDonosHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			log.Error("list donos failed", map[string]any{"error": err.Error()})
			http.Error(w, "erro ao buscar donos", http.StatusBadRequest)
			return
		}

		out := make([]donoResponse, 0, len(items))
		for _, d := range items {
			out = append(out, toDonoResponse(d))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func updateDonoHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(chi.URLParam(r, "id"))
		if !ok {
			http.Error(w, "dono não encontrado", http.StatusNotFound)
			return
		}

		var req updateDonoRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		d, err := svc.Update(r.Context(), id, UpdateInput{
			Nome:     req.Nome,
			CPF:      req.CPF,
			Telefone: req.Telefone,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				http.Error(w, "dono não encontrado", http.StatusNotFound)
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "erro ao atualizar dono", http.StatusBadRequest)
			}
			return
		}

		writeJSON(w, http.StatusOK, toDonoResponse(d))
	}
}

func deleteDonoHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(chi.URLParam(r, "id"))
		if !ok {
			http.Error(w, "dono não encontrado", http.StatusNotFound)
			return
		}

		pets, err := svc.Delete(r.Context(), id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "dono não encontrado", http.StatusNotFound)
				return
			}
			log.Error("delete dono failed", map[string]any{"dono_id": id, "error": err.Error()})
			http.Error(w, "erro ao deletar dono", http.StatusBadRequest)
			return
		}

		log.Info("dono deleted", map[string]any{"dono_id": id, "pets_deleted": pets})
		writeJSON(w, http.StatusOK, successResponse{Success: true, Message: "dono e pets associados deletados com sucesso"})
	}
}

func toDonoResponse(d Dono) donoResponse {
	return donoResponse{
		ID:       d.ID,
		Nome:     d.Nome,
		CPF:      d.CPF,
		Telefone: d.Telefone,
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
