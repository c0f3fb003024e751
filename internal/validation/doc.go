// Animerec - Anime Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

// Package validation wraps go-playground/validator v10 with a shared instance
// and readable error messages.
//
// Configuration structs and decoded request bodies both carry validate tags:
//
//	type ServerConfig struct {
//	    Port int `koanf:"port" validate:"min=1,max=65535"`
//	}
//
//	if err := validation.ValidateStruct(&cfg); err != nil {
//	    var verrs validation.Errors
//	    if errors.As(err, &verrs) && verrs.Has("server.port", "min") {
//	        ...
//	    }
//	}
//
// Field names in errors use the koanf or json tag and include the parent path,
// so messages read like "server.port must be at least 1".
package validation
