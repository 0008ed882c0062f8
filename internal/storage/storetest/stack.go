// Package storetest runs a miniredis server that also answers the subset of
// RedisBloom, RedisJSON and RediSearch commands used by the storage package.
package storetest

import (
	"encoding/json"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/alicebob/miniredis/v2/server"
	"github.com/redis/go-redis/v9"
)

type Stack struct {
	*miniredis.Miniredis

	mu      sync.Mutex
	blooms  map[string]map[string]struct{}
	docs    map[string]interface{}
	indexes map[string]index

	searches [][]string
}

type index struct {
	prefixes []string
}

func Run(t testing.TB) *Stack {
	t.Helper()
	s := &Stack{
		Miniredis: miniredis.RunT(t),
		blooms:    map[string]map[string]struct{}{},
		docs:      map[string]interface{}{},
		indexes:   map[string]index{},
	}

	cmds := map[string]server.Cmd{
		"BF.RESERVE":     s.bfReserve,
		"BF.ADD":         s.bfAdd,
		"BF.EXISTS":      s.bfExists,
		"JSON.SET":       s.jsonSet,
		"JSON.GET":       s.jsonGet,
		"JSON.ARRAPPEND": s.jsonArrAppend,
		"JSON.DEL":       s.jsonDel,
		"FT.CREATE":      s.ftCreate,
		"FT.DROPINDEX":   s.ftDropIndex,
		"FT.SEARCH":      s.ftSearch,
	}
	for name, cmd := range cmds {
		if err := s.Server().Register(name, cmd); err != nil {
			t.Fatalf("register %s: %v", name, err)
		}
	}
	return s
}

// Client returns a RESP2 client closed with the test.
func (s *Stack) Client(t testing.TB) *redis.Client {
	t.Helper()
	client := redis.NewClient(&redis.Options{Addr: s.Addr(), Protocol: 2})
	t.Cleanup(func() { client.Close() })
	return client
}

// Document returns the decoded JSON document at key, or nil.
func (s *Stack) Document(key string) interface{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.docs[key]
}

// LastSearch returns the arguments of the latest FT.SEARCH call.
func (s *Stack) LastSearch() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.searches) == 0 {
		return nil
	}
	return s.searches[len(s.searches)-1]
}

func (s *Stack) HasIndex(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.indexes[name]
	return ok
}

func (s *Stack) bfReserve(c *server.Peer, cmd string, args []string) {
	if len(args) < 3 {
		c.WriteError(errWrongArgs(cmd))
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blooms[args[0]] = map[string]struct{}{}
	c.WriteOK()
}

func (s *Stack) bfAdd(c *server.Peer, cmd string, args []string) {
	if len(args) != 2 {
		c.WriteError(errWrongArgs(cmd))
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	filter, ok := s.blooms[args[0]]
	if !ok {
		filter = map[string]struct{}{}
		s.blooms[args[0]] = filter
	}
	if _, seen := filter[args[1]]; seen {
		c.WriteInt(0)
		return
	}
	filter[args[1]] = struct{}{}
	c.WriteInt(1)
}

func (s *Stack) bfExists(c *server.Peer, cmd string, args []string) {
	if len(args) != 2 {
		c.WriteError(errWrongArgs(cmd))
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, seen := s.blooms[args[0]][args[1]]; seen {
		c.WriteInt(1)
		return
	}
	c.WriteInt(0)
}

func (s *Stack) jsonSet(c *server.Peer, cmd string, args []string) {
	if len(args) < 3 {
		c.WriteError(errWrongArgs(cmd))
		return
	}
	key, path, raw := args[0], args[1], args[2]
	if path != "$" && path != "." {
		c.WriteError("ERR fake JSON.SET only supports the root path")
		return
	}
	var doc interface{}
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		c.WriteError("ERR invalid JSON: " + err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	_, exists := s.docs[key]
	if len(args) > 3 {
		switch strings.ToUpper(args[3]) {
		case "NX":
			if exists {
				c.WriteNull()
				return
			}
		case "XX":
			if !exists {
				c.WriteNull()
				return
			}
		}
	}
	s.docs[key] = doc
	c.WriteOK()
}

func (s *Stack) jsonGet(c *server.Peer, cmd string, args []string) {
	if len(args) < 1 {
		c.WriteError(errWrongArgs(cmd))
		return
	}
	s.mu.Lock()
	doc, ok := s.docs[args[0]]
	s.mu.Unlock()
	if !ok {
		c.WriteNull()
		return
	}
	out, _ := json.Marshal(doc)
	if len(args) > 1 && args[1] == "$" {
		c.WriteBulk("[" + string(out) + "]")
		return
	}
	c.WriteBulk(string(out))
}

func (s *Stack) jsonArrAppend(c *server.Peer, cmd string, args []string) {
	if len(args) < 3 {
		c.WriteError(errWrongArgs(cmd))
		return
	}
	key, field := args[0], strings.TrimPrefix(args[1], "$.")

	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.docs[key].(map[string]interface{})
	if !ok {
		c.WriteError("ERR could not perform this operation on a key that doesn't exist")
		return
	}
	list, ok := doc[field].([]interface{})
	if !ok {
		c.WriteLen(1)
		c.WriteNull()
		return
	}
	for _, raw := range args[2:] {
		var elem interface{}
		if err := json.Unmarshal([]byte(raw), &elem); err != nil {
			c.WriteError("ERR invalid JSON: " + err.Error())
			return
		}
		list = append(list, elem)
	}
	doc[field] = list
	c.WriteLen(1)
	c.WriteInt(len(list))
}

var idFilterPath = regexp.MustCompile(`^\$\.(\w+)\[\?\(@\.id==("(?:[^"\\]|\\.)*")\)\]$`)

func (s *Stack) jsonDel(c *server.Peer, cmd string, args []string) {
	if len(args) < 1 {
		c.WriteError(errWrongArgs(cmd))
		return
	}
	key := args[0]
	path := "$"
	if len(args) > 1 {
		path = args[1]
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.docs[key]
	if !ok {
		c.WriteInt(0)
		return
	}
	if path == "$" || path == "." {
		delete(s.docs, key)
		c.WriteInt(1)
		return
	}
	m := idFilterPath.FindStringSubmatch(path)
	if m == nil {
		c.WriteError("ERR fake JSON.DEL does not support path " + path)
		return
	}
	id, err := strconv.Unquote(m[2])
	if err != nil {
		c.WriteError("ERR bad filter literal")
		return
	}
	obj, _ := doc.(map[string]interface{})
	list, _ := obj[m[1]].([]interface{})
	kept := make([]interface{}, 0, len(list))
	for _, elem := range list {
		if e, ok := elem.(map[string]interface{}); ok && e["id"] == id {
			continue
		}
		kept = append(kept, elem)
	}
	if obj != nil && list != nil {
		obj[m[1]] = kept
	}
	c.WriteInt(len(list) - len(kept))
}

func (s *Stack) ftCreate(c *server.Peer, cmd string, args []string) {
	if len(args) < 1 {
		c.WriteError(errWrongArgs(cmd))
		return
	}
	var idx index
	for i := 1; i < len(args); i++ {
		if strings.ToUpper(args[i]) == "PREFIX" && i+1 < len(args) {
			n, _ := strconv.Atoi(args[i+1])
			for j := 0; j < n && i+2+j < len(args); j++ {
				idx.prefixes = append(idx.prefixes, args[i+2+j])
			}
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.indexes[args[0]]; ok {
		c.WriteError("Index already exists")
		return
	}
	s.indexes[args[0]] = idx
	c.WriteOK()
}

func (s *Stack) ftDropIndex(c *server.Peer, cmd string, args []string) {
	if len(args) < 1 {
		c.WriteError(errWrongArgs(cmd))
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.indexes[args[0]]; !ok {
		c.WriteError("Unknown Index name")
		return
	}
	delete(s.indexes, args[0])
	c.WriteOK()
}

var fieldQuery = regexp.MustCompile(`^@(\w+):(.+)$`)

// ftSearch understands "*", "@field:term" and "@field:(term)" as a
// case-insensitive substring match, SORTBY on numeric fields and LIMIT.
func (s *Stack) ftSearch(c *server.Peer, cmd string, args []string) {
	if len(args) < 2 {
		c.WriteError(errWrongArgs(cmd))
		return
	}
	s.mu.Lock()
	s.searches = append(s.searches, append([]string(nil), args...))
	idx, ok := s.indexes[args[0]]
	s.mu.Unlock()
	if !ok {
		c.WriteError(args[0] + ": no such index")
		return
	}

	query := args[1]
	var matchField, matchTerm string
	if query != "*" {
		m := fieldQuery.FindStringSubmatch(query)
		if m == nil {
			c.WriteError("Syntax error at offset 0 near " + query)
			return
		}
		term := m[2]
		if strings.HasPrefix(term, "(") && strings.HasSuffix(term, ")") {
			term = term[1 : len(term)-1]
		}
		matchField, matchTerm = m[1], strings.ToLower(strings.TrimSpace(strings.Trim(term, "*")))
	}

	sortField, sortDesc := "", false
	offset, limit := 0, 10
	for i := 2; i < len(args); i++ {
		switch strings.ToUpper(args[i]) {
		case "SORTBY":
			if i+1 < len(args) {
				sortField = args[i+1]
				i++
				if i+1 < len(args) && (strings.ToUpper(args[i+1]) == "DESC" || strings.ToUpper(args[i+1]) == "ASC") {
					sortDesc = strings.ToUpper(args[i+1]) == "DESC"
					i++
				}
			}
		case "LIMIT":
			if i+2 < len(args) {
				offset, _ = strconv.Atoi(args[i+1])
				limit, _ = strconv.Atoi(args[i+2])
				i += 2
			}
		}
	}

	type hit struct {
		key    string
		fields map[string]string
	}
	var hits []hit
	for _, key := range s.Keys() {
		if !hasAnyPrefix(key, idx.prefixes) || s.Type(key) != "hash" {
			continue
		}
		names, _ := s.HKeys(key)
		fields := make(map[string]string, len(names))
		for _, name := range names {
			fields[name] = s.HGet(key, name)
		}
		if matchField != "" && !strings.Contains(strings.ToLower(fields[matchField]), matchTerm) {
			continue
		}
		hits = append(hits, hit{key: key, fields: fields})
	}

	if sortField != "" {
		sort.SliceStable(hits, func(i, j int) bool {
			a, _ := strconv.ParseFloat(hits[i].fields[sortField], 64)
			b, _ := strconv.ParseFloat(hits[j].fields[sortField], 64)
			if sortDesc {
				return a > b
			}
			return a < b
		})
	}

	total := len(hits)
	if offset > len(hits) {
		offset = len(hits)
	}
	hits = hits[offset:]
	if limit < len(hits) {
		hits = hits[:limit]
	}

	c.WriteLen(1 + 2*len(hits))
	c.WriteInt(total)
	for _, h := range hits {
		c.WriteBulk(h.key)
		names := make([]string, 0, len(h.fields))
		for name := range h.fields {
			names = append(names, name)
		}
		sort.Strings(names)
		c.WriteLen(2 * len(names))
		for _, name := range names {
			c.WriteBulk(name)
			c.WriteBulk(h.fields[name])
		}
	}
}

func hasAnyPrefix(key string, prefixes []string) bool {
	if len(prefixes) == 0 {
		return true
	}
	for _, p := range prefixes {
		if strings.HasPrefix(key, p) {
			return true
		}
	}
	return false
}

func errWrongArgs(cmd string) string {
	return "ERR wrong number of arguments for '" + strings.ToLower(cmd) + "' command"
}
