package database

import (
	"reflect"
	"testing"

	"github.com/jasimarif/psychology-app/config"
)

func TestDatabaseNames(t *testing.T) {
	tests := []struct {
		name      string
		dbName    string
		databases []string
		want      []string
	}{
		{"falls back to application database", "psychapp", nil, []string{"psychapp"}},
		{"explicit list wins", "psychapp", []string{"psychapp", "psychapp_test"}, []string{"psychapp", "psychapp_test"}},
		{"drops blanks and repeats", "psychapp", []string{"a", "", "b", "a"}, []string{"a", "b"}},
		{"nothing configured", "", nil, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Database.DBName = tt.dbName
			cfg.Server.Databases = tt.databases

			if got := DatabaseNames(cfg); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DatabaseNames() = %v, want %v", got, tt.want)
			}
		})
	}
}
