package editor

import "github.com/arx-os/museum-editor/internal/export"

// Export maps the current plan to a relational export document (spec
// §4.10, §6). The mapper is pure on the plan snapshot passed to it, so
// this is safe to call at any point without affecting committed state.
func (k *Kernel) Export(opts export.Options) export.Document {
	return export.Map(k.Plan, k.Config, opts)
}
