/*
Copyright (C) 2026  Carl-Philip Hänsch

    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU General Public License as published by
    the Free Software Foundation, either version 3 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU General Public License
    along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
package lam

import "io"
import "fmt"
import "time"
import "sync"
import "strings"
import "net/http"
import "encoding/json"
import "github.com/google/uuid"
import "github.com/gorilla/websocket"

// EvalResponse is the JSON answer of the web endpoint for one term.
type EvalResponse struct {
	Input      string `json:"input"`
	Result     string `json:"result"`
	Steps      int    `json:"steps"`
	NormalForm bool   `json:"normalform"`
	Numeral    *int   `json:"numeral,omitempty"`
	Error      string `json:"error,omitempty"`
}

// EvalTerm runs the full pipeline for a remote caller: parse, expand
// against the workspace, reduce under the step limit.
func EvalTerm(ws *Workspace, origin string, src string) EvalResponse {
	src = strings.TrimSpace(src)
	t, err := Parse(origin, src)
	if err != nil {
		return EvalResponse{Input: src, Error: err.Error()}
	}
	result := ws.Eval(t)
	resp := EvalResponse{
		Input:      src,
		Result:     Print(result.Term),
		Steps:      result.Steps,
		NormalForm: result.NormalForm,
	}
	if n, ok := ChurchNumeral(result.Term); ok {
		resp.Numeral = &n
	}
	return resp
}

// HTTPServe opens the evaluation endpoint on the given port:
// POST /eval with a term as body, GET /ws for a websocket where every
// text message is a term and every reply the JSON result.
func HTTPServe(port int, ws *Workspace) {
	mux := http.NewServeMux()
	handler := &evalServer{ws: ws}
	mux.Handle("/eval", handler)
	mux.Handle("/ws", http.HandlerFunc(handler.serveWebsocket))
	server := &http.Server{
		Addr:           fmt.Sprintf(":%v", port),
		Handler:        mux,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}
	go server.ListenAndServe()
}

type evalServer struct {
	ws *Workspace
}

func (s *evalServer) ServeHTTP(res http.ResponseWriter, req *http.Request) {
	// catch panics and print out 500 Internal Server Error
	defer func() {
		if r := recover(); r != nil {
			PrintError("error in http handler: " + fmt.Sprint(r))
			res.Header().Set("Content-Type", "text/plain")
			res.WriteHeader(500)
			io.WriteString(res, "500 Internal Server Error: ")
			io.WriteString(res, fmt.Sprint(r))
		}
	}()
	if req.Method != http.MethodPost {
		res.WriteHeader(405)
		io.WriteString(res, "405 Method Not Allowed")
		return
	}
	var b strings.Builder
	io.Copy(&b, req.Body)
	req.Body.Close()
	res.Header().Set("Content-Type", "application/json")
	json.NewEncoder(res).Encode(EvalTerm(s.ws, req.RemoteAddr, b.String()))
}

func (s *evalServer) serveWebsocket(res http.ResponseWriter, req *http.Request) {
	var upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}
	upgrader.CheckOrigin = func(r *http.Request) bool { return true }
	conn, err := upgrader.Upgrade(res, req, nil)
	if err != nil {
		PrintError("websocket upgrade failed: " + fmt.Sprint(err))
		return
	}
	session := uuid.New().String()
	fmt.Println("websocket session " + session + " connected from " + req.RemoteAddr)
	var sendmutex sync.Mutex
	go func() {
		defer func() {
			if r := recover(); r != nil {
				PrintError("error in websocket receive: " + fmt.Sprint(r))
			}
		}()
		defer conn.Close()
		for {
			messageType, msg, err := conn.ReadMessage()
			if err != nil {
				fmt.Println("websocket session " + session + " closed")
				return
			}
			if messageType != websocket.TextMessage {
				continue
			}
			reply, _ := json.Marshal(EvalTerm(s.ws, "ws:"+session, string(msg)))
			sendmutex.Lock()
			err = conn.WriteMessage(websocket.TextMessage, reply)
			sendmutex.Unlock()
			if err != nil {
				return
			}
		}
	}()
}
