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

	// AI Configuration - Details operation defaults
	v.SetDefault("ai.details.provider", "gemini")
	v.SetDefault("ai.details.model", "")
	v.SetDefault("ai.details.timeout", 45*time.Second)
	v.SetDefault("ai.details.apiKey", "")
	v.SetDefault("ai.details.maxRetries", 3)
	v.SetDefault("ai.details.temperature", 0.1) // Extraction should not improvise
	v.SetDefault("ai.details.useSystemPrompts", true)

	// AI Configuration - Narrative operation defaults
	v.SetDefault("ai.narrative.provider", "gemini")
	v.SetDefault("ai.narrative.model", "")
	v.SetDefault("ai.narrative.timeout", 75*time.Second)
	v.SetDefault("ai.narrative.apiKey", "")
	v.SetDefault("ai.narrative.maxRetries", 2)
	v.SetDefault("ai.narrative.temperature", 0.7) // Prose benefits from some variety
	v.SetDefault("ai.narrative.useSystemPrompts", true)

	// AI Configuration - Insights operation defaults
	v.SetDefault("ai.insights.provider", "gemini")
	v.SetDefault("ai.insights.model", "")
	v.SetDefault("ai.insights.timeout", 60*time.Second)
	v.SetDefault("ai.insights.apiKey", "")
	v.SetDefault("ai.insights.maxRetries", 2)
	v.SetDefault("ai.insights.temperature", 0.3) // Grounded in the category scores
	v.SetDefault("ai.insights.useSystemPrompts", true)

	// Circuit Breaker Configuration defaults for all operations
	v.SetDefault("ai.details.circuitBreaker.enabled", true)
	v.SetDefault("ai.details.circuitBreaker.maxRequests", 3)
	v.SetDefault("ai.details.circuitBreaker.interval", 60*time.Second)
	v.SetDefault("ai.details.circuitBreaker.timeout", 60*time.Second)
	v.SetDefault("ai.details.circuitBreaker.minRequests", 3)
	v.SetDefault("ai.details.circuitBreaker.failureThreshold", 0.6)

	v.SetDefault("ai.narrative.circuitBreaker.enabled", true)
	v.SetDefault("ai.narrative.circuitBreaker.maxRequests", 3)
	v.SetDefault("ai.narrative.circuitBreaker.interval", 60*time.Second)
	v.SetDefault("ai.narrative.circuitBreaker.timeout", 60*time.Second)
	v.SetDefault("ai.narrative.circuitBreaker.minRequests", 3)
	v.SetDefault("ai.narrative.circuitBreaker.failureThreshold", 0.6)

	v.SetDefault("ai.insights.circuitBreaker.enabled", true)
	v.SetDefault("ai.insights.circuitBreaker.maxRequests", 3)
	v.SetDefault("ai.insights.circuitBreaker.interval", 60*time.Second)
	v.SetDefault("ai.insights.circuitBreaker.timeout", 60*time.Second)
	v.SetDefault("ai.insights.circuitBreaker.minRequests", 3)
	v.SetDefault("ai.insights.circuitBreaker.failureThreshold", 0.6)

	// Server Configuration
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.readTimeout", 30*time.Second)
	v.SetDefault("server.writeTimeout", 30*time.Second)
	v.SetDefault("server.idleTimeout", 120*time.Second)
	v.SetDefault("server.maxUploadSize", 10*1024*1024) // 10MB resume uploads

	// TLS Configuration defaults
	v.SetDefault("server.tls.mode", "disabled") // disabled, server, mutual
	v.SetDefault("server.tls.certFile", "")
	v.SetDefault("server.tls.keyFile", "")
	v.SetDefault("server.tls.caFile", "")
	v.SetDefault("server.tls.minVersion", "1.2")           // TLS 1.2 minimum
	v.SetDefault("server.tls.cipherSuites", []string{})    // Use Go defaults
	v.SetDefault("server.tls.clientAuthPolicy", "require") // require, request, verify
	v.SetDefault("server.tls.insecureSkipVerify", false)
	v.SetDefault("server.tls.serverName", "")

	// Auto-reload configuration defaults
	v.SetDefault("server.tls.autoReload.enabled", true)
	v.SetDefault("server.tls.autoReload.checkInterval", 30*time.Second)
	v.SetDefault("server.tls.autoReload.preemptiveRenewal", 72*time.Hour) // 72 hours before expiry
	v.SetDefault("server.tls.autoReload.maxRetries", 3)
	v.SetDefault("server.tls.autoReload.retryDelay", 10*time.Second)

	// File watcher defaults
	v.SetDefault("server.tls.autoReload.fileWatcher.enabled", true)
	v.SetDefault("server.tls.autoReload.fileWatcher.debounceDelay", time.Second)

	// Vault watcher defaults
	v.SetDefault("server.tls.autoReload.vaultWatcher.enabled", false)
	v.SetDefault("server.tls.autoReload.vaultWatcher.pollInterval", 5*time.Minute)
	v.SetDefault("server.tls.autoReload.vaultWatcher.autoRenew", true)
	v.SetDefault("server.tls.autoReload.vaultWatcher.renewThreshold", 24*time.Hour)
	v.SetDefault("server.tls.autoReload.vaultWatcher.secretPath", "")

	// API Authentication defaults
	v.SetDefault("server.apiKeys", []string{})

	// Rate limiting defaults
	v.SetDefault("server.rateLimit.enabled", false)
	v.SetDefault("server.rateLimit.requestsPerMin", 60)
	v.SetDefault("server.rateLimit.burstCapacity", 10)
	v.SetDefault("server.rateLimit.byIP", true)
	v.SetDefault("server.rateLimit.byAPIKey", false)
	v.SetDefault("server.rateLimit.window", time.Minute)

	// App Configuration
	v.SetDefault("app.logLevel", "info")
	v.SetDefault("app.defaultFormat", "json")
	v.SetDefault("app.supportedFormats", []string{"json", "text", "markdown"})
	v.SetDefault("app.maxFileSize", 10*1024*1024) // 10MB

	// Vault Configuration
	v.SetDefault("vault.enabled", false)
	v.SetDefault("vault.address", "")
	v.SetDefault("vault.token", "")
	v.SetDefault("vault.tokenFile", "")
	v.SetDefault("vault.namespace", "")
	v.SetDefault("vault.secrets.apiKeys", "")
	v.SetDefault("vault.secrets.aiKey", "")
	v.SetDefault("vault.secrets.tlsCerts", "")

	// Observability Configuration
	v.SetDefault("observability.enabled", true)
	v.SetDefault("observability.serviceName", "resumescan")
	v.SetDefault("observability.serviceVersion", "")  // Will use app version if empty
	v.SetDefault("observability.serviceInstance", "") // Will be auto-generated if empty
	v.SetDefault("observability.consoleOutput", false)
	v.SetDefault("observability.sampleRate", 1.0)

	// Tracing Configuration
	v.SetDefault("observability.tracing.enabled", true)
	v.SetDefault("observability.tracing.sampleRate", 1.0)

	// Metrics Configuration
	v.SetDefault("observability.metrics.enabled", true)
	v.SetDefault("observability.metrics.collectionInterval", 15*time.Second)

	// Custom Metrics Configuration
	v.SetDefault("observability.customMetrics.aiOperations.enabled", true)
	v.SetDefault("observability.customMetrics.aiOperations.trackDuration", true)
	v.SetDefault("observability.customMetrics.aiOperations.trackTokenUsage", true)
	v.SetDefault("observability.customMetrics.aiOperations.trackModelInfo", true)
	v.SetDefault("observability.customMetrics.scoringMetrics.enabled", true)
	v.SetDefault("observability.customMetrics.scoringMetrics.trackSuccessRates", true)
	v.SetDefault("observability.customMetrics.scoringMetrics.trackContentSizes", true)
	v.SetDefault("observability.customMetrics.scoringMetrics.trackScores", true)
	v.SetDefault("observability.customMetrics.infrastructure.enabled", true)
	v.SetDefault("observability.customMetrics.infrastructure.trackRateLimits", true)
	v.SetDefault("observability.customMetrics.infrastructure.trackCertExpiry", true)

	// Console Configuration
	v.SetDefault("observability.console.enabled", false)
	v.SetDefault("observability.console.prettyPrint", true)

	// Prometheus Configuration
	v.SetDefault("observability.prometheus.enabled", true)
	v.SetDefault("observability.prometheus.endpoint", "/metrics")
	v.SetDefault("observability.prometheus.port", "9090")

	// OTLP Configuration
	v.SetDefault("observability.otlp.enabled", false)
	v.SetDefault("observability.otlp.endpoint", "http://localhost:4318")
	v.SetDefault("observability.otlp.insecure", true)
	v.SetDefault("observability.otlp.headers", map[string]string{})

	// Health Check Configuration
	v.SetDefault("observability.healthCheck.timeout", 10*time.Second)
}
