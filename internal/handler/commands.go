// Package handler exposes the command dispatcher over HTTP for tooling and tests
// that do not go through Discord.
package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/AlterEgo_Go/internal/inventory"
	"github.com/osse101/AlterEgo_Go/internal/logger"
)

// Commands is the part of the command dispatcher the API drives
type Commands interface {
	PlayerNamed(name string) *inventory.Player
	Execute(ctx context.Context, p *inventory.Player, text string) (string, error)
	ExecuteModerator(ctx context.Context, text string) (string, error)
	Describe(p *inventory.Player, useIDs bool) string
}

// CommandRequest is a chat command issued on a player's behalf
type CommandRequest struct {
	Player  string `json:"player"  validate:"required,max=100"`
	Command string `json:"command" validate:"required,max=2000,command"`
}

// ModeratorRequest is a moderator command
type ModeratorRequest struct {
	Command string `json:"command" validate:"required,max=2000,command"`
}

// CommandResponse carries the reply the chat user would have seen
type CommandResponse struct {
	Message string `json:"message"`
}

// InventoryResponse is a rendered inventory
type InventoryResponse struct {
	Player    string `json:"player"`
	Inventory string `json:"inventory"`
}

// HandleCommand runs a player command. Rejections keep their player-facing reply
// as the error text and map the failure kind onto the status code.
func HandleCommand(cmds Commands) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CommandRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Command"); err != nil {
			return
		}

		p := cmds.PlayerNamed(req.Player)
		if p == nil {
			respondError(w, http.StatusNotFound, ErrMsgPlayerNotFound)
			return
		}

		reply, err := cmds.Execute(r.Context(), p, req.Command)
		if err != nil {
			respondError(w, statusFor(err), reply)
			return
		}
		respondJSON(w, http.StatusOK, CommandResponse{Message: reply})
	}
}

// HandleModeratorCommand runs a moderator command
func HandleModeratorCommand(cmds Commands) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ModeratorRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Moderator command"); err != nil {
			return
		}

		reply, err := cmds.ExecuteModerator(r.Context(), req.Command)
		if err != nil {
			respondError(w, statusFor(err), reply)
			return
		}
		respondJSON(w, http.StatusOK, CommandResponse{Message: reply})
	}
}

// HandleGetInventory renders a player's inventory. ?ids=true shows item identifiers.
func HandleGetInventory(cmds Commands) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "player")
		useIDs, err := strconv.ParseBool(GetOptionalQueryParam(r, "ids", "false"))
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidIDsFlag)
			return
		}

		p := cmds.PlayerNamed(name)
		if p == nil {
			logger.FromContext(r.Context()).Debug("Inventory requested for unknown player", "player", name)
			respondError(w, http.StatusNotFound, ErrMsgPlayerNotFound)
			return
		}
		respondJSON(w, http.StatusOK, InventoryResponse{Player: p.Name, Inventory: cmds.Describe(p, useIDs)})
	}
}
