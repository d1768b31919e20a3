package hash

import (
	"golang.org/x/crypto/bcrypt"
)

// Cost 密码哈希的工作因子
const Cost = 10

// BcryptHash 使用 bcrypt 对密码进行哈希, 盐值由 bcrypt 生成
func BcryptHash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), Cost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// BcryptCheck 验证密码是否与 bcrypt 哈希匹配
func BcryptCheck(password, hashedPassword string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}

// IsBcryptHash 判断字符串是否为 bcrypt 格式
func IsBcryptHash(s string) bool {
	_, err := bcrypt.Cost([]byte(s))
	return err == nil
}
