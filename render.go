package vpipe

// maxPlanes bounds how many planes a single Frame may declare, the
// same limit spec §4.9 validation enforces against.
const maxPlanes = 4

// Render is the single pipeline entry point (§6): validates image and
// target, reads the source planes into one color-managed in-flight
// image, scales it to the target's destination rectangle, and writes
// it out. Returns false (with no panic) on any unrecoverable failure;
// the caller inspects Renderer.Flags or the logger output for why.
//
// Per §7's abort semantics: a validation failure aborts immediately
// with no GPU side effects (logged at ERROR). A capability or
// transient dispatch failure during the pipeline itself trips the
// relevant disable flag (logged at WARN) and Render returns false for
// this call only — the Renderer remains usable for the next frame.
func (r *Renderer) Render(image, target *Frame, params RenderParams) bool {
	log := Logger()

	if err := image.Validate(maxPlanes, RoleSource); err != nil {
		log.Error("render: invalid source frame", "error", err)
		return false
	}
	if err := target.Validate(maxPlanes, RoleTarget); err != nil {
		log.Error("render: invalid target frame", "error", err)
		return false
	}

	p := newPass(r, image, target)
	log.Debug("render: pass started", "src_planes", len(image.Planes), "dst_planes", len(target.Planes))

	merged, err := readImage(p)
	if err != nil {
		log.Error("render: read_image failed", "error", err)
		return false
	}
	p.image = merged

	if err := p.prepareTarget(); err != nil {
		log.Error("render: invalid target frame", "error", err)
		return false
	}

	if err := scaleMain(p, params); err != nil {
		log.Warn("render: scale_main failed", "error", err)
		return false
	}

	if err := outputTarget(p, params); err != nil {
		log.Warn("render: output_target failed", "error", err)
		return false
	}

	log.Debug("render: pass complete", "flags", r.Flags())
	return true
}
