package config

import (
	"time"

	"github.com/spf13/viper"
)

// setDefaults sets the default configuration values
func setDefaults(v *viper.Viper) {
	// AI Configuration - Global defaults
	v.SetDefault("ai.provider", "gemini")
	v.SetDefault("ai.model", "gemini-2.0-flash")
	v.SetDefault("ai.timeout", 60*time.Second)
	v.SetDefault("ai.apiKey", "")
	v.SetDefault("ai.maxRetries", 3)
	v.SetDefault("ai.temperature", 0.7)
	v.SetDefault("ai.useSystemPrompts", true)

	// AI Configuration - Extract operation defaults
	v.SetDefault("ai.extract.provider", "gemini")
	v.SetDefault("ai.extract.model", "")
	v.SetDefault("ai.extract.timeout", 60*time.Second)
	v.SetDefault("ai.extract.maxRetries", 3)
	v.SetDefault("ai.extract.temperature", 0.1) // Low temperature for structured extraction

	// AI Configuration - Analyze operation defaults
	v.SetDefault("ai.analyze.provider", "gemini")
	v.SetDefault("ai.analyze.model", "")
	v.SetDefault("ai.analyze.timeout", 60*time.Second)
	v.SetDefault("ai.analyze.maxRetries", 3)
	v.SetDefault("ai.analyze.temperature", 0.1)

	// AI Configuration - Match operation defaults
	v.SetDefault("ai.match.provider", "gemini")
	v.SetDefault("ai.match.model", "")
	v.SetDefault("ai.match.timeout", 90*time.Second) // One pass per job listing
	v.SetDefault("ai.match.maxRetries", 2)
	v.SetDefault("ai.match.temperature", 0.2)

	// AI Configuration - Generate operation defaults
	v.SetDefault("ai.generate.provider", "gemini")
	v.SetDefault("ai.generate.model", "")
	v.SetDefault("ai.generate.timeout", 90*time.Second)
	v.SetDefault("ai.generate.maxRetries", 2)
	v.SetDefault("ai.generate.temperature", 0.7) // Creative prose generation

	// Circuit breaker defaults per operation
	for _, op := range []string{"extract", "analyze", "match", "generate"} {
		v.SetDefault("ai."+op+".circuitBreaker.enabled", true)
		v.SetDefault("ai."+op+".circuitBreaker.maxRequests", 3)
		v.SetDefault("ai."+op+".circuitBreaker.interval", 60*time.Second)
		v.SetDefault("ai."+op+".circuitBreaker.timeout", 60*time.Second)
		v.SetDefault("ai."+op+".circuitBreaker.minRequests", 3)
		v.SetDefault("ai."+op+".circuitBreaker.failureThreshold", 0.6)
	}

	// Job search service defaults
	v.SetDefault("search.baseURL", "http://localhost:8100")
	v.SetDefault("search.apiKey", "")
	v.SetDefault("search.sites", []string{"indeed", "linkedin", "glassdoor"})
	v.SetDefault("search.country", "USA")
	v.SetDefault("search.timeout", 45*time.Second)
	v.SetDefault("search.maxRetries", 2)
	v.SetDefault("search.requestsPerMin", 30)
	v.SetDefault("search.circuitBreaker.enabled", true)
	v.SetDefault("search.circuitBreaker.maxRequests", 3)
	v.SetDefault("search.circuitBreaker.interval", 60*time.Second)
	v.SetDefault("search.circuitBreaker.timeout", 60*time.Second)
	v.SetDefault("search.circuitBreaker.minRequests", 3)
	v.SetDefault("search.circuitBreaker.failureThreshold", 0.6)

	// Workflow defaults
	v.SetDefault("workflow.location", "Remote")
	v.SetDefault("workflow.maxResults", 20)
	v.SetDefault("workflow.hoursOld", 72)
	v.SetDefault("workflow.matchThreshold", 0.0)

	// Server defaults
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.readTimeout", 30*time.Second)
	v.SetDefault("server.writeTimeout", 120*time.Second) // Workflows run several AI calls
	v.SetDefault("server.idleTimeout", 120*time.Second)
	v.SetDefault("server.tls.mode", "disabled")
	v.SetDefault("server.tls.minVersion", "1.2")
	v.SetDefault("server.rateLimit.enabled", true)
	v.SetDefault("server.rateLimit.requestsPerMin", 10)
	v.SetDefault("server.rateLimit.burstCapacity", 5)
	v.SetDefault("server.rateLimit.byIP", true)
	v.SetDefault("server.rateLimit.byAPIKey", false)
	v.SetDefault("server.rateLimit.window", time.Minute)

	// App defaults
	v.SetDefault("app.logLevel", "info")
	v.SetDefault("app.defaultFormat", "json")
	v.SetDefault("app.supportedFormats", []string{"json", "text", "markdown"})
	v.SetDefault("app.maxFileSize", int64(10*1024*1024))

	// Vault defaults
	v.SetDefault("vault.enabled", false)
	v.SetDefault("vault.address", "")
	v.SetDefault("vault.token", "")
	v.SetDefault("vault.tokenFile", "")

	// Observability defaults
	v.SetDefault("observability.enabled", false)
	v.SetDefault("observability.serviceName", "resumeflow")
	v.SetDefault("observability.serviceVersion", "")
	v.SetDefault("observability.consoleOutput", false)
	v.SetDefault("observability.sampleRate", 1.0)
	v.SetDefault("observability.tracing.enabled", true)
	v.SetDefault("observability.tracing.sampleRate", 1.0)
	v.SetDefault("observability.metrics.enabled", true)
	v.SetDefault("observability.metrics.collectionInterval", 30*time.Second)
	v.SetDefault("observability.console.prettyPrint", false)
	v.SetDefault("observability.prometheus.enabled", false)
	v.SetDefault("observability.prometheus.endpoint", "/metrics")
	v.SetDefault("observability.prometheus.port", "9090")
	v.SetDefault("observability.otlp.enabled", false)
	v.SetDefault("observability.otlp.endpoint", "localhost:4318")
	v.SetDefault("observability.otlp.insecure", true)
	v.SetDefault("observability.healthCheck.timeout", 5*time.Second)
	v.SetDefault("observability.healthCheck.aiModelCheckTimeout", 10*time.Second)
}
