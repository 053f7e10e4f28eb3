package client

import (
	"strconv"
	"strings"
)

// Key identifies a cached read. Its string form joins the kind and params
// with ":" and ends with ":", so a resource's key is a prefix of every key
// derived from it but never of a sibling ("proofs:projectId=1:" does not
// prefix "proofs:projectId=10:").
type Key struct {
	Kind   string
	Params []string
}

func (k Key) String() string {
	var b strings.Builder
	b.WriteString(k.Kind)
	b.WriteByte(':')
	for _, p := range k.Params {
		b.WriteString(p)
		b.WriteByte(':')
	}
	return b.String()
}

const (
	kindProjects = "projects"
	kindProofs   = "proofs"
	kindStats    = "stats"
)

func projectsKey(search string) Key {
	if search == "" {
		return Key{Kind: kindProjects}
	}
	return Key{Kind: kindProjects, Params: []string{"search=" + search}}
}

func projectKey(id int64) Key {
	return Key{Kind: kindProjects, Params: []string{strconv.FormatInt(id, 10)}}
}

func progressKey(projectID int64) Key {
	return Key{Kind: kindProjects, Params: []string{strconv.FormatInt(projectID, 10), "progress"}}
}

func proofsKey(projectID int64) Key {
	return Key{Kind: kindProofs, Params: []string{"projectId=" + strconv.FormatInt(projectID, 10)}}
}

func statsKey() Key {
	return Key{Kind: kindStats}
}
