package console

// EffectKind names what the host must do with an Effect.
type EffectKind int

const (
	// EffectWrite writes Text with no trailing newline.
	EffectWrite EffectKind = iota
	// EffectWriteLine writes Text followed by a newline.
	EffectWriteLine
	// EffectClear wipes the surface.
	EffectClear
	// EffectType hands Text to the typing renderer; Then is written once
	// typing completes.
	EffectType
	// EffectCancelTyping abandons any typing still in flight.
	EffectCancelTyping
)

// Effect is one output action produced by the reducer.
type Effect struct {
	Kind EffectKind
	Text string
	Then string
}

func write(text string) Effect {
	return Effect{Kind: EffectWrite, Text: text}
}

// Surface is the terminal-like output the console draws on.
type Surface interface {
	Write(text string)
	WriteLine(text string)
	Clear()
}
