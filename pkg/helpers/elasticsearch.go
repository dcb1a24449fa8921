package helpers

import (
	"github.com/elastic/go-elasticsearch/v8"
)

// NewESClient builds an Elasticsearch client. Username/password are
// optional for unsecured local clusters.
func NewESClient(addrs []string, username, password string) (*elasticsearch.Client, error) {
	cfg := elasticsearch.Config{
		Addresses: addrs,
		Username:  username,
		Password:  password,
	}
	return elasticsearch.NewClient(cfg)
}
