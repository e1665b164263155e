package service

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"portfolio/config"
	"portfolio/dao/model"
	"portfolio/dao/query"
	"portfolio/logutils"
	"portfolio/response"
	"portfolio/util"
)

const (
	identityNameKey = "session_username"
	identityIDKey   = "session_user_id"
)

// IdentityMiddleware resolves the acting identity from the session cookie
// (or a bearer token) when one is present. It never rejects the request;
// unauthenticated callers simply act as "System".
func IdentityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ""
		if cookie, err := c.Cookie(config.GetConfig().Auth.CookieName); err == nil {
			token = cookie
		}
		if token == "" {
			if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
				token = strings.TrimPrefix(h, "Bearer ")
			}
		}
		if token != "" {
			if msg, err := util.GetSessionMgr().CheckToken(token); err == nil {
				c.Set(identityNameKey, msg.Username)
				c.Set(identityIDKey, msg.UserID)
			}
		}
		c.Next()
	}
}

// ActingIdentity returns the session username, or "System" when the request
// carries no valid session.
func ActingIdentity(c *gin.Context) string {
	if name := c.GetString(identityNameKey); name != "" {
		return name
	}
	return model.SystemActor
}

type LoginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func Login(c *gin.Context) {
	var req LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequestError(c, err.Error())
		return
	}
	if req.Username == "" || req.Password == "" {
		response.BadRequestError(c, "username and password required")
		return
	}

	var user model.User
	err := query.DB.WithContext(c.Request.Context()).
		Where("username = ?", req.Username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.UnauthorizedError(c, "invalid credentials", response.InvalidCredentials)
			return
		}
		logutils.Log.Error("login lookup: ", err)
		response.Error(c, err.Error(), response.NotSpecified)
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		response.UnauthorizedError(c, "invalid credentials", response.InvalidCredentials)
		return
	}

	token, err := util.GetSessionMgr().CreateToken(&util.SessionMessage{
		UserID:   user.ID,
		Username: user.Username,
	})
	if err != nil {
		response.Error(c, err.Error(), response.NotSpecified)
		return
	}

	cfg := config.GetConfig()
	c.SetCookie(cfg.Auth.CookieName, token, cfg.Auth.SessionTTLHours*3600, "/", "", false, true)
	response.Success(c, gin.H{"id": user.ID, "username": user.Username})
}

func Logout(c *gin.Context) {
	c.SetCookie(config.GetConfig().Auth.CookieName, "", -1, "/", "", false, true)
	response.Success(c, gin.H{"detail": "logged out"})
}

func Me(c *gin.Context) {
	name := c.GetString(identityNameKey)
	if name == "" {
		response.UnauthorizedError(c, "not authenticated", response.Unauthorized)
		return
	}
	response.Success(c, gin.H{"id": c.GetUint(identityIDKey), "username": name})
}

func RegisterAuth(g *gin.RouterGroup) {
	g.POST("/auth/login", Login)
	g.POST("/auth/logout", Logout)
	g.GET("/auth/me", Me)
}
