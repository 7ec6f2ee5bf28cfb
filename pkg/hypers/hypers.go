// Package hypers models resolved hyperparameter documents. Architectures
// keep their own nested blocks, so the resolved form stays a document tree;
// typed accessors cover the training conventions shared by the built-in
// architectures.
package hypers

import (
	"encoding/json"
	"fmt"
)

// Hypers is a fully defaulted hyperparameter configuration: the architecture
// name, its model blocks, and its training options, with every field present
// as either the document value or the architecture default.
type Hypers struct {
	Name     string
	Model    map[string]any
	Training map[string]any
}

// FromDocument splits a merged hyperparameter document into its sections.
func FromDocument(doc map[string]any) (Hypers, error) {
	name, _ := doc["name"].(string)
	if name == "" {
		return Hypers{}, fmt.Errorf("hypers: document has no architecture name")
	}

	out := Hypers{Name: name}
	if raw, ok := doc["model"]; ok {
		model, ok := raw.(map[string]any)
		if !ok {
			return Hypers{}, fmt.Errorf("hypers: model section must be an object, got %T", raw)
		}
		out.Model = model
	}
	if raw, ok := doc["training"]; ok {
		training, ok := raw.(map[string]any)
		if !ok {
			return Hypers{}, fmt.Errorf("hypers: training section must be an object, got %T", raw)
		}
		out.Training = training
	}
	return out, nil
}

// Document renders the configuration back into document form.
func (h Hypers) Document() map[string]any {
	out := map[string]any{"name": h.Name}
	if h.Model != nil {
		out["model"] = h.Model
	}
	if h.Training != nil {
		out["training"] = h.Training
	}
	return out
}

// Training holds the optimizer, scheduler, and bookkeeping options shared by
// the gradient-descent architectures. PET keeps its own upper-case naming
// convention and is read from the raw Training map instead.
type Training struct {
	BatchSize               int                           `json:"batch_size"`
	NumEpochs               int                           `json:"num_epochs"`
	LearningRate            float64                       `json:"learning_rate"`
	EarlyStoppingPatience   int                           `json:"early_stopping_patience"`
	SchedulerPatience       int                           `json:"scheduler_patience"`
	SchedulerFactor         float64                       `json:"scheduler_factor"`
	LogInterval             int                           `json:"log_interval"`
	CheckpointInterval      int                           `json:"checkpoint_interval"`
	PerStructureTargets     []string                      `json:"per_structure_targets"`
	FixedCompositionWeights map[string]map[string]float64 `json:"fixed_composition_weights"`
	LossWeights             map[string]float64            `json:"loss_weights"`
}

// TrainingOptions decodes the training section into the shared typed form.
func (h Hypers) TrainingOptions() (Training, error) {
	if h.Training == nil {
		return Training{}, fmt.Errorf("hypers: %s has no training section", h.Name)
	}

	raw, err := json.Marshal(h.Training)
	if err != nil {
		return Training{}, fmt.Errorf("hypers: encode training section: %w", err)
	}
	var out Training
	if err := json.Unmarshal(raw, &out); err != nil {
		return Training{}, fmt.Errorf("hypers: decode training section for %s: %w", h.Name, err)
	}
	return out, nil
}
