// Package config loads hookdom.json or hookdom.yaml.
//
// # Configuration File Structure
//
//	{
//	  "debug": false,
//	  "render": {
//	    "maxUpdateDepth": 1000
//	  },
//	  "server": {
//	    "host": "localhost",
//	    "port": 4000,
//	    "writeTimeout": "10s"
//	  },
//	  "metrics": {
//	    "enabled": true,
//	    "namespace": "hookdom"
//	  },
//	  "tracing": {
//	    "enabled": false,
//	    "tracerName": "hookdom"
//	  },
//	  "snapshot": {
//	    "bucket": "my-snapshots",
//	    "prefix": "previews/",
//	    "region": "us-east-1"
//	  }
//	}
//
// The same keys are accepted in YAML.
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("Listening on", cfg.Address())
package config
