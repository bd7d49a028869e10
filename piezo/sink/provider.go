package sink

import "github.com/valerio/go-piezo/piezo/audio"

// Provider is the sample source sinks read from.
type Provider = audio.Provider
