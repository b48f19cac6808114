package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/sankalp021/intervue/internal/models"
	"github.com/sankalp021/intervue/internal/services"
	"github.com/sankalp021/intervue/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type WSHandler struct {
	hub        *ws.Hub
	controller *services.Controller
}

func NewWSHandler(hub *ws.Hub, controller *services.Controller) *WSHandler {
	return &WSHandler{hub: hub, controller: controller}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// envelope is the client-to-server frame; Data stays raw until the event
// type picks the payload shape.
type envelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// HandleWebSocket upgrades the connection and pumps events into the
// controller until the client goes away.
func (h *WSHandler) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}

	client := ws.NewClient(conn)
	h.hub.Register(client)
	defer func() {
		h.controller.Disconnect(client)
		h.hub.Unregister(client)
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			break
		}

		var msg envelope
		if err := json.Unmarshal(data, &msg); err != nil {
			log.Printf("ws: malformed frame: %v", err)
			continue
		}
		h.dispatch(client, msg)
	}
}

// dispatch routes one event to the controller. Malformed payloads and
// unknown event types are logged and skipped; a bad frame from one client
// must never take down the coordinator.
func (h *WSHandler) dispatch(client *ws.Client, msg envelope) {
	switch msg.Type {
	case "student-join":
		var req models.StudentJoinRequest
		if err := json.Unmarshal(msg.Data, &req); err != nil {
			log.Printf("ws: bad student-join payload: %v", err)
			return
		}
		h.controller.StudentJoin(client, req)

	case "teacher-join":
		h.controller.TeacherJoin(client)

	case "create-poll":
		var req models.CreatePollRequest
		if err := json.Unmarshal(msg.Data, &req); err != nil {
			log.Printf("ws: bad create-poll payload: %v", err)
			return
		}
		if err := h.controller.CreatePoll(req); err != nil {
			log.Printf("ws: create-poll rejected: %v", err)
		}

	case "submit-answer":
		var req models.SubmitAnswerRequest
		if err := json.Unmarshal(msg.Data, &req); err != nil {
			log.Printf("ws: bad submit-answer payload: %v", err)
			return
		}
		h.controller.SubmitAnswer(req)

	case "get-results":
		h.controller.GetResults(client)

	case "send-message":
		var req models.SendMessageRequest
		if err := json.Unmarshal(msg.Data, &req); err != nil {
			log.Printf("ws: bad send-message payload: %v", err)
			return
		}
		h.controller.SendMessage(req)

	default:
		log.Printf("ws: unknown event type %q", msg.Type)
	}
}
