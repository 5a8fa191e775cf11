package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"chat-server/internal/interfaces/httpserver/handlers"
	roomreq "chat-server/internal/interfaces/httpserver/requests/room"
	"chat-server/internal/interfaces/httpserver/responses"
	roomres "chat-server/internal/interfaces/httpserver/responses/room"
	"chat-server/internal/utils/platformerrors"
)

// RegisterRoomRoutes registers the room directory routes.
func RegisterRoomRoutes(router gin.IRoutes, handler *handlers.RoomHandler) {
	router.GET("/rooms", listRooms(handler))
	router.POST("/rooms", createRoom(handler))
	router.GET("/rooms/:id", getRoom(handler))
	router.POST("/rooms/:id/check-password", checkPassword(handler))
	router.DELETE("/rooms/:id", deleteRoom(handler))
}

// listRooms godoc
// @Summary      List rooms
// @Produce      json
// @Success      200 {array} roomres.RoomSummary
// @Router       /rooms [get]
func listRooms(handler *handlers.RoomHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		rooms, err := handler.ListRooms(c.Request.Context())
		if err != nil {
			responses.HandleError(c, err, "failed to list rooms")
			return
		}
		c.JSON(http.StatusOK, roomres.NewRoomList(rooms))
	}
}

// createRoom godoc
// @Summary      Create a room
// @Accept       json
// @Produce      json
// @Success      200 {object} roomres.RoomSummary
// @Failure      400 {object} responses.ErrorResponse
// @Router       /rooms [post]
func createRoom(handler *handlers.RoomHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req roomreq.CreateRoomRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			platformerrors.WriteValidationError(c, "invalid request body")
			return
		}
		if req.Name == "" || req.Username == "" {
			platformerrors.WriteValidationError(c, "name and username are required")
			return
		}

		created, err := handler.CreateRoom(c.Request.Context(), req.Name, req.Description, req.Password, req.Username)
		if err != nil {
			responses.HandleError(c, err, "failed to create room")
			return
		}
		c.JSON(http.StatusOK, roomres.NewRoomSummary(created))
	}
}

// getRoom godoc
// @Summary      Get room details
// @Produce      json
// @Param        id path int true "Room ID"
// @Success      200 {object} roomres.RoomDetail
// @Failure      404 {object} responses.ErrorResponse
// @Router       /rooms/{id} [get]
func getRoom(handler *handlers.RoomHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := roomID(c)
		if !ok {
			return
		}
		found, err := handler.GetRoom(c.Request.Context(), id)
		if err != nil {
			responses.HandleError(c, err, "room not found")
			return
		}
		c.JSON(http.StatusOK, roomres.NewRoomDetail(found))
	}
}

// checkPassword godoc
// @Summary      Check a room password
// @Description  The access gate consulted before joining over the WebSocket.
// @Accept       json
// @Produce      json
// @Param        id path int true "Room ID"
// @Success      200 {object} roomres.CheckPasswordResponse
// @Failure      404 {object} responses.ErrorResponse
// @Router       /rooms/{id}/check-password [post]
func checkPassword(handler *handlers.RoomHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := roomID(c)
		if !ok {
			return
		}
		var req roomreq.CheckPasswordRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			platformerrors.WriteValidationError(c, "invalid request body")
			return
		}

		valid, err := handler.CheckPassword(c.Request.Context(), id, req.Password)
		if err != nil {
			responses.HandleError(c, err, "room not found")
			return
		}
		c.JSON(http.StatusOK, roomres.CheckPasswordResponse{Valid: valid})
	}
}

// deleteRoom godoc
// @Summary      Delete a room
// @Description  Requires the room password; cascades into messages and live membership.
// @Accept       json
// @Produce      json
// @Param        id path int true "Room ID"
// @Success      200 {object} roomres.DeleteRoomResponse
// @Failure      403 {object} responses.ErrorResponse
// @Failure      404 {object} responses.ErrorResponse
// @Router       /rooms/{id} [delete]
func deleteRoom(handler *handlers.RoomHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := roomID(c)
		if !ok {
			return
		}
		var req roomreq.DeleteRoomRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			platformerrors.WriteValidationError(c, "invalid request body")
			return
		}

		if err := handler.DeleteRoom(c.Request.Context(), id, req.Password); err != nil {
			responses.HandleError(c, err, "failed to delete room")
			return
		}
		c.JSON(http.StatusOK, roomres.DeleteRoomResponse{Success: true})
	}
}

func roomID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		platformerrors.WriteValidationError(c, "invalid room id")
		return 0, false
	}
	return id, true
}
