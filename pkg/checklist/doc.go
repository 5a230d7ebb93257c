// Package checklist scores generated output against declarative quality
// rules. Checklists are YAML documents listing weighted rules (file exists,
// file contains a snippet, file must not contain a snippet); evaluation
// produces a per-rule report and an aggregate score.
package checklist
