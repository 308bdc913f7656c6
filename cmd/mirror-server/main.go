package main

import (
	"bytes"
	"flag"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"gitahub/internal/source"
)

// mirror-server publishes a dataset file as a static JSON URL, the same
// shape the api-server can load with GITAHUB_DATA=http://host/gita.json.
func main() {
	var (
		addr     = flag.String("addr", ":9000", "listen address")
		dataPath = flag.String("data", "data/gita.json", "dataset file to serve")
	)
	flag.Parse()

	gin.SetMode(gin.ReleaseMode)
	r := newRouter(*dataPath)

	log.Printf("mirror-server listening on %s (serving %s at /gita.json)", *addr, *dataPath)
	log.Fatal(http.ListenAndServe(*addr, r))
}

func newRouter(dataPath string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/gita.json", func(c *gin.Context) {
		b, err := os.ReadFile(dataPath)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "cannot read dataset: " + err.Error()})
			return
		}
		// validate shape so a bad file doesn't silently break readers
		if _, err := source.Decode(bytes.NewReader(b)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Data(http.StatusOK, "application/json; charset=utf-8", b)
	})
	return r
}
