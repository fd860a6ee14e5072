package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// clientLimiter лимитер одного клиента с отметкой последнего обращения
type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// UploadRateLimiter ограничивает частоту загрузок по IP клиента.
// Каждый клиент получает собственный rate.Limiter; неактивные записи
// периодически вычищаются.
type UploadRateLimiter struct {
	mu      sync.Mutex
	clients map[string]*clientLimiter
	limit   rate.Limit
	burst   int
}

// NewUploadRateLimiter создает лимитер: limit запросов в секунду с burst
func NewUploadRateLimiter(limit rate.Limit, burst int) *UploadRateLimiter {
	rl := &UploadRateLimiter{
		clients: make(map[string]*clientLimiter),
		limit:   limit,
		burst:   burst,
	}

	go rl.cleanupLoop()

	return rl
}

// Middleware возвращает gin.HandlerFunc с проверкой лимита
func (rl *UploadRateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":   true,
				"message": "Слишком много запросов, попробуйте позже",
			})
			return
		}
		c.Next()
	}
}

func (rl *UploadRateLimiter) allow(clientIP string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	client, ok := rl.clients[clientIP]
	if !ok {
		client = &clientLimiter{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.clients[clientIP] = client
	}
	client.lastSeen = time.Now()

	return client.limiter.Allow()
}

// cleanupLoop удаляет лимитеры клиентов, не появлявшихся дольше 10 минут
func (rl *UploadRateLimiter) cleanupLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		for ip, client := range rl.clients {
			if time.Since(client.lastSeen) > 10*time.Minute {
				delete(rl.clients, ip)
			}
		}
		rl.mu.Unlock()
	}
}
