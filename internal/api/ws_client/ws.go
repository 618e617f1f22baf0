package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"

	"algonest_webclient/internal/model"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
)

// Dev client for the alert stream. Log in through the BFF first and export
// the session cookie value as ALGONEST_SESSION.
func main() {
	url := "ws://localhost:8080/ws/alerts"
	if v := os.Getenv("ALGONEST_ALERTS_URL"); v != "" {
		url = v
	}

	cookieName := "algonest_session"
	if v := os.Getenv("ALGONEST_COOKIE_NAME"); v != "" {
		cookieName = v
	}

	header := http.Header{}
	header.Add("Cookie", (&http.Cookie{Name: cookieName, Value: os.Getenv("ALGONEST_SESSION")}).String())

	conn, resp, err := websocket.DefaultDialer.Dial(url, header)
	if err != nil {
		if resp != nil {
			log.Fatalf("dial: %v (status %d)", err, resp.StatusCode)
		}
		log.Fatal("dial:", err)
	}
	defer conn.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			_, p, err := conn.ReadMessage()
			if err != nil {
				log.Println("read error:", err)
				return
			}

			var a model.Alert
			if err = json.Unmarshal(p, &a); err != nil {
				log.Printf("Received:\n%s\n", p)
				continue
			}

			out, _ := json.MarshalIndent(a, "", "  ")
			log.Printf("Alert:\n%s\n", out)
		}
	}()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)

	select {
	case <-done:
	case <-interrupt:
		err = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		if err != nil {
			log.Println("write close:", err)
		}
	}
}
