// Package conf loads named database configurations from a JSON file and
// prepares the matching clients.
package conf

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/zeptools/sqlbuild/sqldb"
)

// LoadSQLDBConfs reads a JSON object of named database configs, e.g.
//
//	{
//	    "main": {"type": "mysql", "host": "127.0.0.1", "port": 3306, ...},
//	    "analytics": {"type": "pgsql", "host": "10.0.0.5", "port": 5432, ...}
//	}
func LoadSQLDBConfs(confFilePath string) (map[string]*sqldb.Conf, error) {
	confBytes, err := os.ReadFile(confFilePath) // ([]byte, error)
	if err != nil {
		return nil, err
	}
	confs := make(map[string]*sqldb.Conf)
	if err = json.Unmarshal(confBytes, &confs); err != nil {
		return nil, err
	}
	return confs, nil
}

// PrepareSQLDBClients builds and initializes one client per named config.
// The implementations to use must be registered first, e.g. mysql.Register().
// On any failure the already-initialized clients are closed again.
func PrepareSQLDBClients(confs map[string]*sqldb.Conf) (map[string]sqldb.Client, error) {
	clients := make(map[string]sqldb.Client)
	for dbName, dbConf := range confs {
		dbClient, err := sqldb.New(dbConf.Type, dbConf)
		if err == nil {
			err = dbClient.Init()
		}
		if err != nil {
			for _, ready := range clients {
				_ = ready.Close()
			}
			return nil, fmt.Errorf("prepare client %q: %w", dbName, err)
		}
		clients[dbName] = dbClient
	}
	return clients, nil
}
