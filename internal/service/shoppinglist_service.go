package service

import (
	"fmt"
	"strings"

	"foodgram-go/internal/repository"
)

// ShoppingListReportHeader 购物清单文本首行
const ShoppingListReportHeader = "购物清单:"

// ShoppingListService 购物清单服务，汇总购物车内全部食谱的食材
type ShoppingListService struct {
	relationRepo *repository.RelationRepository
}

func NewShoppingListService(relationRepo *repository.RelationRepository) *ShoppingListService {
	return &ShoppingListService{relationRepo: relationRepo}
}

// BuildReport 生成购物清单文本
// 同名同单位的食材跨食谱求和，每行格式为 "名称 - 数量 单位"
func (s *ShoppingListService) BuildReport(userID int64) (string, error) {
	sums, err := s.relationRepo.AggregateCart(userID)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(ShoppingListReportHeader)
	b.WriteString("\n")
	for _, item := range sums {
		fmt.Fprintf(&b, "%s - %d %s\n", item.Name, item.Amount, item.Unit)
	}
	return b.String(), nil
}
