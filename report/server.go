// Package report serves recorded conversion audits over an HTTP API.
package report

import (
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/sarchlab/qdt/datarecording"
	"github.com/sarchlab/qdt/tracing"
)

// A Server reports the content of a recording database over HTTP.
type Server struct {
	portNumber int
	actualPort int
	reader     datarecording.DataReader
}

type execEntry struct {
	Property string `json:"property"`
	Value    string `json:"value"`
}

type listResponse struct {
	Data  []any `json:"data"`
	Total int   `json:"total"`
}

// NewServer creates a report server without starting it.
func NewServer() *Server {
	return &Server{}
}

// WithPortNumber sets the port number of the server.
func (s *Server) WithPortNumber(portNumber int) *Server {
	if portNumber < 1000 {
		fmt.Fprintf(os.Stderr,
			"Port number %d is smaller than 1000, "+
				"which is not allowed. Using a random port instead.\n",
			portNumber)
		portNumber = 0
	}

	s.portNumber = portNumber

	return s
}

// RegisterReader connects the server to a recording database.
func (s *Server) RegisterReader(reader datarecording.DataReader) {
	reader.MapTable("exec_info", execEntry{})
	reader.MapTable("conversions", tracing.ConversionRecord{})
	reader.MapTable("rounding_warnings", tracing.WarningRecord{})

	s.reader = reader
}

// StartServer starts serving the report API. It does not block.
func (s *Server) StartServer() {
	actualPort := ":0"
	if s.portNumber > 1000 {
		actualPort = ":" + strconv.Itoa(s.portNumber)
	}

	listener, err := net.Listen("tcp", actualPort)
	dieOnErr(err)

	s.actualPort = listener.Addr().(*net.TCPAddr).Port

	fmt.Fprintf(
		os.Stderr,
		"Serving conversion report at http://localhost:%d\n",
		s.actualPort)

	r := s.handler()

	go func() {
		err := http.Serve(listener, r)
		dieOnErr(err)
	}()
}

// Port returns the port the server actually listens on. It is only valid
// after StartServer has been called.
func (s *Server) Port() int {
	return s.actualPort
}

func (s *Server) handler() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/api/exec", s.listExecInfo)
	r.HandleFunc("/api/conversions", s.listConversions)
	r.HandleFunc("/api/warnings", s.listWarnings)

	return r
}

func (s *Server) listExecInfo(w http.ResponseWriter, r *http.Request) {
	s.listTable(w, r, "exec_info")
}

func (s *Server) listConversions(w http.ResponseWriter, r *http.Request) {
	s.listTable(w, r, "conversions")
}

func (s *Server) listWarnings(w http.ResponseWriter, r *http.Request) {
	s.listTable(w, r, "rounding_warnings")
}

func (s *Server) listTable(
	w http.ResponseWriter,
	r *http.Request,
	tableName string,
) {
	params := datarecording.QueryParams{
		Limit:  parseIntQuery(r, "limit"),
		Offset: parseIntQuery(r, "offset"),
	}

	results, totalCount, err := s.reader.Query(r.Context(), tableName, params)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if results == nil {
		results = []any{}
	}

	rsp, err := json.Marshal(listResponse{Data: results, Total: totalCount})
	dieOnErr(err)

	w.Header().Set("Content-Type", "application/json")

	_, err = w.Write(rsp)
	dieOnErr(err)
}

func parseIntQuery(r *http.Request, name string) int {
	v := r.URL.Query().Get(name)
	if v == "" {
		return 0
	}

	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0
	}

	return n
}

func dieOnErr(err error) {
	if err != nil {
		log.Panic(err)
	}
}
