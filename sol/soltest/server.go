package soltest

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
)

type request struct {
	ID     json.RawMessage   `json:"id"`
	Method string            `json:"method"`
	Params []json.RawMessage `json:"params"`
}

type response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  interface{}     `json:"result,omitempty"`
	Error   *RPCError       `json:"error,omitempty"`
}

// RPCError is a JSON-RPC error returned by the Server
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Server is a JSON-RPC endpoint that answers getLatestBlockhash and
// sendTransaction the way a validator does. Received transactions are
// decoded and kept so tests can inspect them
type Server struct {
	*httptest.Server

	// Blockhash returned by getLatestBlockhash
	Blockhash solana.Hash

	// SendError when set is returned for sendTransaction
	SendError *RPCError

	mu           sync.Mutex
	methods      []string
	transactions []*solana.Transaction
}

func NewServer() *Server {
	s := &Server{Blockhash: Blockhash}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serveHTTP))
	return s
}

// Methods returns the rpc methods called so far in order
func (s *Server) Methods() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.methods...)
}

// Transactions returns the transactions received so far
func (s *Server) Transactions() []*solana.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*solana.Transaction(nil), s.transactions...)
}

func (s *Server) serveHTTP(w http.ResponseWriter, r *http.Request) {
	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	s.methods = append(s.methods, req.Method)
	s.mu.Unlock()

	res := response{JSONRPC: "2.0", ID: req.ID}
	switch req.Method {
	case "getLatestBlockhash":
		res.Result = map[string]interface{}{
			"context": map[string]interface{}{"slot": 100},
			"value": map[string]interface{}{
				"blockhash":            s.Blockhash.String(),
				"lastValidBlockHeight": 250,
			},
		}
	case "sendTransaction":
		tx, err := s.decodeTransaction(req.Params)
		if err != nil {
			res.Error = &RPCError{Code: -32602, Message: err.Error()}
			break
		}

		s.mu.Lock()
		s.transactions = append(s.transactions, tx)
		s.mu.Unlock()

		if s.SendError != nil {
			res.Error = s.SendError
			break
		}
		res.Result = tx.Signatures[0].String()
	default:
		res.Error = &RPCError{Code: -32601, Message: "Method not found"}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(res)
}

func (s *Server) decodeTransaction(params []json.RawMessage) (*solana.Transaction, error) {
	if len(params) == 0 {
		return nil, fmt.Errorf("missing transaction parameter")
	}

	var encoded string
	if err := json.Unmarshal(params[0], &encoded); err != nil {
		return nil, err
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, err
	}

	tx, err := solana.TransactionFromDecoder(bin.NewBinDecoder(data))
	if err != nil {
		return nil, err
	}

	if len(tx.Signatures) == 0 {
		return nil, fmt.Errorf("transaction is not signed")
	}

	return tx, nil
}
