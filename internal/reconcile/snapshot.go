package reconcile

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/abhisek/quizdeck/internal/answers"
	"github.com/abhisek/quizdeck/internal/quiz"
)

// snapshot is the stored form of a result. Older writers stored the
// questions and raw answers next to (or instead of) the derived
// questionResults, so both shapes decode here.
type snapshot struct {
	quiz.QuizResult
	Questions []quiz.Question  `json:"questions,omitempty"`
	Answers   []map[string]any `json:"answers,omitempty"`
}

// snapshotSchemaDef is the minimal contract a stored snapshot must meet
// before the reconciler will touch it. Everything beyond the slug is
// optional because repair exists precisely for partial data.
var snapshotSchemaDef = map[string]any{
	"type":     "object",
	"required": []any{"slug"},
	"properties": map[string]any{
		"slug":            map[string]any{"type": "string", "minLength": 1},
		"quizId":          map[string]any{"type": "string"},
		"quizType":        map[string]any{"type": "string"},
		"questionResults": map[string]any{"type": "array"},
		"questions":       map[string]any{"type": "array"},
		"answers":         map[string]any{"type": "array"},
	},
}

var (
	snapshotSchemaOnce sync.Once
	snapshotSchema     *jsonschema.Schema
	snapshotSchemaErr  error
)

// compiledSnapshotSchema compiles the snapshot schema once.
func compiledSnapshotSchema() (*jsonschema.Schema, error) {
	snapshotSchemaOnce.Do(func() {
		b, err := json.Marshal(snapshotSchemaDef)
		if err != nil {
			snapshotSchemaErr = fmt.Errorf("marshal snapshot schema: %w", err)
			return
		}
		var def any
		if err := json.Unmarshal(b, &def); err != nil {
			snapshotSchemaErr = fmt.Errorf("parse snapshot schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const url = "schema://result-snapshot.json"
		if err := c.AddResource(url, def); err != nil {
			snapshotSchemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		snapshotSchema, snapshotSchemaErr = c.Compile(url)
	})
	return snapshotSchema, snapshotSchemaErr
}

// decodeSnapshot validates raw against the snapshot schema and decodes it.
// Returns nil for anything unusable; storage faults are not errors here,
// they just mean this candidate is out.
func decodeSnapshot(raw json.RawMessage) *snapshot {
	if len(raw) == 0 {
		return nil
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		warnf("reconcile: snapshot is not valid JSON: %v", err)
		return nil
	}

	schema, err := compiledSnapshotSchema()
	if err != nil {
		warnf("reconcile: snapshot schema unavailable: %v", err)
		return nil
	}
	if err := schema.Validate(parsed); err != nil {
		warnf("reconcile: snapshot rejected by schema: %v", err)
		return nil
	}

	var snap snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		warnf("reconcile: snapshot decode: %v", err)
		return nil
	}
	return &snap
}

// repair re-derives questionResults from a snapshot's questions + raw
// answers via the normalizer. Returns false when the snapshot has nothing
// to rebuild from.
func (s *snapshot) repair() bool {
	if len(s.Questions) == 0 || len(s.Answers) == 0 {
		return false
	}

	raws := make(map[string]quiz.RawAnswer, len(s.Answers))
	for i, fields := range s.Answers {
		if fields == nil {
			continue
		}
		qid, _ := fields["questionId"].(string)
		if qid == "" && i < len(s.Questions) {
			// Positional fallback for writers that dropped the id.
			qid = s.Questions[i].ID
		}
		if qid != "" {
			raws[qid] = quiz.LegacyAnswer(fields)
		}
	}

	s.QuestionResults = answers.NormalizeAll(s.Questions, raws, nil)
	s.Repaired = true
	return true
}
