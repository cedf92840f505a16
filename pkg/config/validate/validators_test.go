package validate

import "testing"

func TestValidateMongoURI(t *testing.T) {
	tests := []struct {
		name        string
		uri         string
		shouldError bool
	}{
		{"standard", "mongodb://localhost:27017", false},
		{"with credentials", "mongodb://user:pw@db1:27017,db2:27017/?replicaSet=rs0", false},
		{"srv", "mongodb+srv://user:pw@cluster0.example.net/logger", false},
		{"empty", "", true},
		{"http scheme", "http://localhost:27017", true},
		{"no host", "mongodb://", true},
		{"srv with port", "mongodb+srv://cluster0.example.net:27017", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMongoURI(tt.uri)
			if tt.shouldError && err == nil {
				t.Errorf("expected error, got none")
			}
			if !tt.shouldError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateDatabaseName(t *testing.T) {
	tests := []struct {
		name        string
		db          string
		shouldError bool
	}{
		{"simple", "logger", false},
		{"empty", "", true},
		{"dot", "log.ger", true},
		{"dollar", "log$", true},
		{"space", "my logs", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDatabaseName(tt.db)
			if (err != nil) != tt.shouldError {
				t.Errorf("ValidateDatabaseName(%q) error = %v, shouldError %v", tt.db, err, tt.shouldError)
			}
		})
	}
}

func TestValidateCollectionName(t *testing.T) {
	tests := []struct {
		name        string
		coll        string
		shouldError bool
	}{
		{"simple", "logs", false},
		{"dotted", "logs.archive", false},
		{"empty", "", true},
		{"system", "system.profile", true},
		{"dollar", "lo$gs", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCollectionName(tt.coll)
			if (err != nil) != tt.shouldError {
				t.Errorf("ValidateCollectionName(%q) error = %v, shouldError %v", tt.coll, err, tt.shouldError)
			}
		})
	}
}

func TestValidateOneOf(t *testing.T) {
	if err := ValidateOneOf("json", "json", "console"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidateOneOf("text", "json", "console"); err == nil {
		t.Error("expected error for value outside the allowed set")
	}
}
