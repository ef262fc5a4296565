/*
Package gscript parses GraphHopper Script, a small line-oriented language of
variable assignments optionally guarded by ordered conditions.

A script is a list of assignments. An assignment starts at column 0 with a
name and a colon; its candidate values follow on the same line or on indented
continuation lines. A candidate is either a bare value or a guarded
"left operator right ? value" pair. The first candidate whose condition holds
wins; evaluation itself is left to the consumer.

	max_speed: 90
	priority:
	  road_class == primary ? 1.2
	  max_speed > 80 ? 1.0
	  0.8     # fallback

Reader example:

	script, err := gscript.DecodeFile("weighting.gs", nil)
	if err != nil {
		var perr *gscript.ParseError
		if errors.As(err, &perr) {
			// perr.Line, perr.Text, perr.Message
		}
	}

Writer example:

	out, err := gscript.Format(script, nil)
	if err != nil {
		// handle error
	}

Validator example:

	issues := gscript.Validate(script, nil)
	if len(issues) != 0 {
		// handle lint issues
	}

Custom operators example:

	script, err := gscript.ParseString(src, &gscript.ParseOptions{
		ExtraOperators: []string{"~=", "in"},
	})
*/
package gscript
